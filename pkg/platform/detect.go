package platform

import (
	"bufio"
	"context"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/shirou/gopsutil/v3/host"

	"github.com/arthur-debert/promptline/pkg/logging"
)

// osReleasePath is a var so tests can point it at a fixture.
var osReleasePath = "/etc/os-release"

// Detect queries the host once and classifies it. Detection failures
// degrade to an Unknown-typed descriptor; the prompt must render even
// when the system refuses to introspect.
func Detect(ctx context.Context) Descriptor {
	logger := logging.GetLogger("platform")

	info, err := host.InfoWithContext(ctx)
	if err != nil {
		logger.Warn().Err(err).Msg("host query failed, reporting unknown platform")
		return Descriptor{Type: Unknown, Bitness: bitnessFromArch(runtime.GOARCH)}
	}

	d := Descriptor{
		Type:    classify(info.OS, info.Platform),
		Bitness: bitnessFromArch(info.KernelArch),
		Version: strings.TrimSpace(info.PlatformVersion),
	}
	if d.Bitness == BitnessUnknown {
		d.Bitness = bitnessFromArch(runtime.GOARCH)
	}
	if info.OS == "linux" {
		d.Codename = linuxCodename()
	}
	if d.Type == Windows {
		d.Edition = windowsEdition(info.Platform)
	}

	logger.Debug().
		Str("type", d.Type.String()).
		Str("version", d.Version).
		Str("codename", d.Codename).
		Msg("platform detected")
	return d
}

// SystemReader is the production Reader backed by Detect.
type SystemReader struct{}

func (SystemReader) Descriptor(ctx context.Context) Descriptor {
	return Detect(ctx)
}

// platformAliases maps gopsutil platform identifiers (lowercase, from
// the os-release ID field on Linux) to OS families.
var platformAliases = map[string]Type{
	"alpine":        Alpine,
	"amazon":        Amazon,
	"amzn":          Amazon,
	"android":       Android,
	"arch":          Arch,
	"archarm":       Arch,
	"centos":        CentOS,
	"debian":        Debian,
	"endeavouros":   EndeavourOS,
	"fedora":        Fedora,
	"garuda":        Garuda,
	"gentoo":        Gentoo,
	"linuxmint":     Mint,
	"manjaro":       Manjaro,
	"mariner":       Mariner,
	"nixos":         NixOS,
	"ol":            OracleLinux,
	"oracle":        OracleLinux,
	"opensuse":      OpenSUSE,
	"opensuse-leap": OpenSUSE,
	"pop":           Pop,
	"raspbian":      Raspbian,
	"redhat":        Redhat,
	"rhel":          RedHatEnterprise,
	"sles":          SUSE,
	"suse":          SUSE,
	"solus":         Solus,
	"ubuntu":        Ubuntu,
}

// classify maps a gopsutil (OS, Platform) pair to a Type. The OS field
// settles non-Linux systems; on Linux the distribution identifier from
// os-release decides, falling back to the generic Linux family.
func classify(goos, platform string) Type {
	switch strings.ToLower(goos) {
	case "windows":
		return Windows
	case "darwin":
		return Macos
	case "freebsd":
		return FreeBSD
	case "openbsd":
		return OpenBSD
	case "netbsd":
		return NetBSD
	case "dragonfly":
		return DragonFly
	case "solaris", "illumos":
		return Illumos
	}

	p := strings.ToLower(strings.TrimSpace(platform))
	if t, ok := platformAliases[p]; ok {
		return t
	}
	// openSUSE ships variant ids like opensuse-tumbleweed.
	if strings.HasPrefix(p, "opensuse") {
		return OpenSUSE
	}
	if strings.ToLower(goos) == "linux" {
		return Linux
	}
	return Unknown
}

var arch64 = map[string]bool{
	"x86_64": true, "amd64": true, "arm64": true, "aarch64": true,
	"ppc64": true, "ppc64le": true, "s390x": true, "riscv64": true,
	"mips64": true, "mips64le": true, "loong64": true, "ia64": true,
}

var arch32 = map[string]bool{
	"i386": true, "i486": true, "i586": true, "i686": true, "x86": true,
	"386": true, "arm": true, "armv6l": true, "armv7l": true,
	"mips": true, "mipsle": true, "riscv32": true,
}

func bitnessFromArch(arch string) Bitness {
	a := strings.ToLower(strings.TrimSpace(arch))
	switch {
	case arch64[a]:
		return Bitness64
	case arch32[a]:
		return Bitness32
	default:
		return BitnessUnknown
	}
}

// linuxCodename reads the release codename from os-release. Absence is
// normal (rolling distros carry none).
func linuxCodename() string {
	f, err := os.Open(osReleasePath)
	if err != nil {
		return ""
	}
	defer func() { _ = f.Close() }()
	return parseCodename(f)
}

func parseCodename(r io.Reader) string {
	var fallback string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		value = strings.Trim(value, `"`)
		switch key {
		case "VERSION_CODENAME":
			if value != "" {
				return value
			}
		case "UBUNTU_CODENAME":
			fallback = value
		}
	}
	return fallback
}

// windowsEdition extracts the product edition ("Pro", "Home", ...)
// from gopsutil's Windows platform string, e.g.
// "Microsoft Windows 11 Pro".
func windowsEdition(platform string) string {
	fields := strings.Fields(platform)
	for i, f := range fields {
		if f != "Windows" || i+2 >= len(fields) {
			continue
		}
		// Skip the version token that follows "Windows".
		return strings.Join(fields[i+2:], " ")
	}
	return ""
}
