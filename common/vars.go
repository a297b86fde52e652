package common

var (
	Version = "dev"

	PackageName = "github.com/ruteri/threshold-secret-recovery"
)
