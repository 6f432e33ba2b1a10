// Package buildinfo carries version data injected at link time:
//
//	go build -ldflags "-X github.com/dmitrijs2005/vaxscheduler/internal/buildinfo.buildVersion=v1.2.0 \
//	  -X github.com/dmitrijs2005/vaxscheduler/internal/buildinfo.buildDate=2026-10-15 \
//	  -X github.com/dmitrijs2005/vaxscheduler/internal/buildinfo.buildCommit=abc1234"
package buildinfo

import (
	"fmt"
	"io"
)

var (
	buildVersion = "N/A"
	buildDate    = "N/A"
	buildCommit  = "N/A"
)

// Fields returns the build data as key-value pairs for structured logs.
func Fields() []any {
	return []any{"version", buildVersion, "date", buildDate, "commit", buildCommit}
}

func PrintBuildData(w io.Writer) {
	fmt.Fprintf(w, "Build version: %s\n", buildVersion)
	fmt.Fprintf(w, "Build date: %s\n", buildDate)
	fmt.Fprintf(w, "Build commit: %s\n", buildCommit)
}
