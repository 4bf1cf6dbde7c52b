package mal

// Set at link time with -ldflags "-X github.com/nooranasrin/mal.Version=...".
var (
	Version   = "dev"
	BuildDate = "unknown"
)
