package platform

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypesAreUniqueAndNamed(t *testing.T) {
	seen := make(map[Type]bool)
	for _, typ := range Types() {
		assert.False(t, seen[typ], "duplicate type %q", typ)
		seen[typ] = true

		assert.NotEmpty(t, typ.String())
		assert.NotEmpty(t, typ.DisplayName(), "missing display name for %q", typ)
	}
	assert.Len(t, seen, 36)
	assert.True(t, seen[Unknown], "Unknown must be part of the enumeration")
}

func TestDisplayNameFallsBackToIdentifier(t *testing.T) {
	assert.Equal(t, "SomethingNew", Type("SomethingNew").DisplayName())
}

func TestBitnessString(t *testing.T) {
	assert.Equal(t, "32-bit", Bitness32.String())
	assert.Equal(t, "64-bit", Bitness64.String())
	assert.Equal(t, "", BitnessUnknown.String())
}

func TestFixedReader(t *testing.T) {
	want := Descriptor{Type: Arch, Bitness: Bitness64, Version: "rolling"}

	got := Fixed(want).Descriptor(context.Background())
	assert.Equal(t, want, got)
}

func TestDetectSmoke(t *testing.T) {
	// Whatever the host is, detection must classify it into the
	// enumeration rather than fail.
	d := SystemReader{}.Descriptor(context.Background())

	found := false
	for _, typ := range Types() {
		if d.Type == typ {
			found = true
			break
		}
	}
	assert.True(t, found, "detected type %q is not a recognized family", d.Type)
}

func TestClassify(t *testing.T) {
	tests := []struct {
		goos     string
		platform string
		want     Type
	}{
		{"windows", "Microsoft Windows 11 Pro", Windows},
		{"darwin", "darwin", Macos},
		{"freebsd", "", FreeBSD},
		{"openbsd", "", OpenBSD},
		{"netbsd", "", NetBSD},
		{"dragonfly", "", DragonFly},
		{"solaris", "", Illumos},
		{"linux", "ubuntu", Ubuntu},
		{"linux", "debian", Debian},
		{"linux", "arch", Arch},
		{"linux", "archarm", Arch},
		{"linux", "fedora", Fedora},
		{"linux", "centos", CentOS},
		{"linux", "alpine", Alpine},
		{"linux", "amzn", Amazon},
		{"linux", "rhel", RedHatEnterprise},
		{"linux", "linuxmint", Mint},
		{"linux", "manjaro", Manjaro},
		{"linux", "nixos", NixOS},
		{"linux", "opensuse-leap", OpenSUSE},
		{"linux", "opensuse-tumbleweed", OpenSUSE},
		{"linux", "pop", Pop},
		{"linux", "raspbian", Raspbian},
		{"linux", "endeavouros", EndeavourOS},
		{"linux", "garuda", Garuda},
		{"linux", "gentoo", Gentoo},
		{"linux", "solus", Solus},
		{"linux", "sles", SUSE},
		{"linux", "ol", OracleLinux},
		// Unrecognized distros stay in the generic Linux family.
		{"linux", "voidlinux", Linux},
		{"linux", "", Linux},
		// Unclassifiable hosts degrade to Unknown, never an error.
		{"plan9", "", Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.goos+"/"+tt.platform, func(t *testing.T) {
			assert.Equal(t, tt.want, classify(tt.goos, tt.platform))
		})
	}
}

func TestBitnessFromArch(t *testing.T) {
	tests := []struct {
		arch string
		want Bitness
	}{
		{"x86_64", Bitness64},
		{"amd64", Bitness64},
		{"aarch64", Bitness64},
		{"arm64", Bitness64},
		{"riscv64", Bitness64},
		{"i686", Bitness32},
		{"armv7l", Bitness32},
		{"386", Bitness32},
		{"", BitnessUnknown},
		{"weird-arch", BitnessUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.arch, func(t *testing.T) {
			assert.Equal(t, tt.want, bitnessFromArch(tt.arch))
		})
	}
}

func TestParseCodename(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name: "debian style",
			content: `PRETTY_NAME="Debian GNU/Linux 12 (bookworm)"
NAME="Debian GNU/Linux"
VERSION_CODENAME=bookworm
ID=debian`,
			want: "bookworm",
		},
		{
			name: "quoted value",
			content: `VERSION_CODENAME="noble"`,
			want:    "noble",
		},
		{
			name: "ubuntu fallback key",
			content: `ID=neon
UBUNTU_CODENAME=jammy`,
			want: "jammy",
		},
		{
			name: "rolling distro has none",
			content: `NAME="Arch Linux"
ID=arch`,
			want: "",
		},
		{
			name:    "garbage lines ignored",
			content: "not-a-kv-line\nVERSION_CODENAME=trixie",
			want:    "trixie",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseCodename(strings.NewReader(tt.content)))
		})
	}
}

func TestWindowsEdition(t *testing.T) {
	tests := []struct {
		platform string
		want     string
	}{
		{"Microsoft Windows 11 Pro", "Pro"},
		{"Microsoft Windows 10 Enterprise LTSC", "Enterprise LTSC"},
		{"Microsoft Windows 11", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.platform, func(t *testing.T) {
			assert.Equal(t, tt.want, windowsEdition(tt.platform))
		})
	}
}
