// Package platform identifies the host operating system and exposes it
// as a small descriptor consumed by prompt segments. Detection runs one
// synchronous system query per call; callers decide whether to cache.
package platform

import "context"

// Type classifies the host into one of the recognized OS families.
// The string value is the canonical identifier used in configuration
// (symbol table keys match it case-insensitively).
type Type string

const (
	Alpine           Type = "Alpine"
	Amazon           Type = "Amazon"
	Android          Type = "Android"
	Arch             Type = "Arch"
	CentOS           Type = "CentOS"
	Debian           Type = "Debian"
	DragonFly        Type = "DragonFly"
	Emscripten       Type = "Emscripten"
	EndeavourOS      Type = "EndeavourOS"
	Fedora           Type = "Fedora"
	FreeBSD          Type = "FreeBSD"
	Garuda           Type = "Garuda"
	Gentoo           Type = "Gentoo"
	HardenedBSD      Type = "HardenedBSD"
	Illumos          Type = "Illumos"
	Linux            Type = "Linux"
	Macos            Type = "Macos"
	Manjaro          Type = "Manjaro"
	Mariner          Type = "Mariner"
	MidnightBSD      Type = "MidnightBSD"
	Mint             Type = "Mint"
	NetBSD           Type = "NetBSD"
	NixOS            Type = "NixOS"
	OpenBSD          Type = "OpenBSD"
	OpenSUSE         Type = "openSUSE"
	OracleLinux      Type = "OracleLinux"
	Pop              Type = "Pop"
	Raspbian         Type = "Raspbian"
	Redhat           Type = "Redhat"
	RedHatEnterprise Type = "RedHatEnterprise"
	Redox            Type = "Redox"
	Solus            Type = "Solus"
	SUSE             Type = "SUSE"
	Ubuntu           Type = "Ubuntu"
	Unknown          Type = "Unknown"
	Windows          Type = "Windows"
)

// Types lists every recognized family in a stable order. Unknown is a
// full member of the enumeration, not an error marker.
func Types() []Type {
	return []Type{
		Alpine, Amazon, Android, Arch, CentOS, Debian, DragonFly,
		Emscripten, EndeavourOS, Fedora, FreeBSD, Garuda, Gentoo,
		HardenedBSD, Illumos, Linux, Macos, Manjaro, Mariner,
		MidnightBSD, Mint, NetBSD, NixOS, OpenBSD, OpenSUSE,
		OracleLinux, Pop, Raspbian, Redhat, RedHatEnterprise, Redox,
		Solus, SUSE, Ubuntu, Unknown, Windows,
	}
}

// String returns the canonical identifier ("Arch", "openSUSE", ...).
func (t Type) String() string {
	return string(t)
}

// DisplayName returns the human-readable product name for the family.
func (t Type) DisplayName() string {
	if name, ok := displayNames[t]; ok {
		return name
	}
	return string(t)
}

var displayNames = map[Type]string{
	Alpine:           "Alpine Linux",
	Amazon:           "Amazon Linux",
	Android:          "Android",
	Arch:             "Arch Linux",
	CentOS:           "CentOS",
	Debian:           "Debian",
	DragonFly:        "DragonFly BSD",
	Emscripten:       "Emscripten",
	EndeavourOS:      "EndeavourOS",
	Fedora:           "Fedora",
	FreeBSD:          "FreeBSD",
	Garuda:           "Garuda Linux",
	Gentoo:           "Gentoo Linux",
	HardenedBSD:      "HardenedBSD",
	Illumos:          "illumos",
	Linux:            "Linux",
	Macos:            "macOS",
	Manjaro:          "Manjaro",
	Mariner:          "CBL-Mariner",
	MidnightBSD:      "MidnightBSD",
	Mint:             "Linux Mint",
	NetBSD:           "NetBSD",
	NixOS:            "NixOS",
	OpenBSD:          "OpenBSD",
	OpenSUSE:         "openSUSE",
	OracleLinux:      "Oracle Linux",
	Pop:              "Pop!_OS",
	Raspbian:         "Raspberry Pi OS",
	Redhat:           "Red Hat Linux",
	RedHatEnterprise: "Red Hat Enterprise Linux",
	Redox:            "Redox",
	Solus:            "Solus",
	SUSE:             "SUSE Linux Enterprise",
	Ubuntu:           "Ubuntu",
	Unknown:          "Unknown",
	Windows:          "Windows",
}

// Bitness reports the word size of the running system. BitnessUnknown
// is a sentinel meaning "could not be determined" and must never be
// rendered as literal text.
type Bitness int

const (
	BitnessUnknown Bitness = iota
	Bitness32
	Bitness64
)

func (b Bitness) String() string {
	switch b {
	case Bitness32:
		return "32-bit"
	case Bitness64:
		return "64-bit"
	default:
		return ""
	}
}

// Descriptor holds everything a prompt segment may want to show about
// the host. Version and Codename/Edition are free text; the empty
// string means the value could not be obtained.
type Descriptor struct {
	Type     Type
	Bitness  Bitness
	Codename string
	Edition  string
	Version  string
}

// Reader supplies a Descriptor. The production implementation queries
// the system once per call; tests substitute a fixed descriptor.
type Reader interface {
	Descriptor(ctx context.Context) Descriptor
}

// ReaderFunc adapts a function to the Reader interface.
type ReaderFunc func(ctx context.Context) Descriptor

func (f ReaderFunc) Descriptor(ctx context.Context) Descriptor {
	return f(ctx)
}

// Fixed returns a Reader that always yields d. Used in tests and by
// callers that already hold a descriptor.
func Fixed(d Descriptor) Reader {
	return ReaderFunc(func(context.Context) Descriptor { return d })
}
