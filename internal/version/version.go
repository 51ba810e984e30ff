package version

import (
	"runtime/debug"
	"sync"
)

const versionDevel = "devel"

// version is set via ldflags at build time:
//
//	go build -ldflags "-X github.com/garrettladley/gaugeview/internal/version.version=v1.2.3"
//
// falls back to debug.ReadBuildInfo for go install.
var version = versionDevel

var once sync.Once

func Get() string {
	once.Do(func() {
		if version != versionDevel {
			return
		}
		info, ok := debug.ReadBuildInfo()
		if !ok {
			return
		}
		if v := info.Main.Version; v != "" && v != "("+versionDevel+")" {
			version = v
		}
	})
	return version
}
