package executor

import "context"

// Executor runs external tools (ffmpeg, whisper-cli, yt-dlp).
// Output of the child process is captured, never forwarded to our own streams.
type Executor interface {
	Execute(ctx context.Context, name string, args ...string) (string, error)
	ExecuteInDir(ctx context.Context, dir string, name string, args ...string) (string, error)
}
