package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Set via -ldflags "-X github.com/NilFoundation/deployer/common/version.gitTag=..."
var (
	gitTag    string
	gitCommit string
)

const (
	unknown    = "<unknown>"
	gethModule = "github.com/ethereum/go-ethereum"
)

// Info describes the running binary.
type Info struct {
	Title     string
	Version   string
	Commit    string
	GoVersion string
	Platform  string
	// Geth is the go-ethereum version the binary is linked with.
	Geth string
}

// Current collects Info from the linker flags, falling back to the embedded build info.
func Current(title string) Info {
	info := Info{
		Title:     title,
		Version:   normalizeTag(gitTag),
		Commit:    gitCommit,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
		Geth:      unknown,
	}

	if build, ok := debug.ReadBuildInfo(); ok {
		if info.Version == unknown && build.Main.Version != "" && build.Main.Version != "(devel)" {
			info.Version = normalizeTag(build.Main.Version)
		}
		for _, setting := range build.Settings {
			if setting.Key == "vcs.revision" && info.Commit == "" {
				info.Commit = setting.Value
			}
		}
		for _, dep := range build.Deps {
			if dep.Path == gethModule {
				info.Geth = dep.Version
			}
		}
	}

	if info.Commit == "" {
		info.Commit = unknown
	}
	return info
}

// normalizeTag drops the "v" prefix and the prerelease part of a git tag ("v1.2.3-5-gabc" gives "1.2.3").
func normalizeTag(tag string) string {
	if tag == "" {
		return unknown
	}
	v, err := semver.NewVersion(tag)
	if err != nil {
		return strings.TrimPrefix(tag, "v")
	}
	return fmt.Sprintf("%d.%d.%d", v.Major(), v.Minor(), v.Patch())
}

func (i Info) String() string {
	var sb strings.Builder
	sb.WriteString(i.Title)
	fmt.Fprintf(&sb, "\n Version:\t%s", i.Version)
	fmt.Fprintf(&sb, "\n OS/Arch:\t%s", i.Platform)
	fmt.Fprintf(&sb, "\n Go version:\t%s", i.GoVersion)
	fmt.Fprintf(&sb, "\n Git commit:\t%s", i.Commit)
	fmt.Fprintf(&sb, "\n go-ethereum:\t%s", i.Geth)
	return sb.String()
}
