package version

import (
	"fmt"
	"runtime"
)

// Overridden at build time with -ldflags "-X".
var (
	Version   = "0.3.0"
	AppName   = "KidBot"
	BuildDate = "unknown"
)

// Info is the body of GET /version.
type Info struct {
	AppName   string `json:"app_name"`
	Version   string `json:"version"`
	BuildDate string `json:"build_date"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

func GetInfo() Info {
	return Info{
		AppName:   AppName,
		Version:   Version,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}

// UserAgent identifies one KidBot component on outbound calls,
// e.g. "KidBot-bridge/0.3.0".
func UserAgent(component string) string {
	return fmt.Sprintf("%s-%s/%s", AppName, component, Version)
}
