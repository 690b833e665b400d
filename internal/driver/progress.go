package driver

// Stage identifies which front-end phase a file is currently going through.
type Stage uint8

const (
	StageLoad Stage = iota
	StageTokenize
	StageParse
)

// Status is a file's state within a Stage.
type Status uint8

const (
	StatusQueued Status = iota
	StatusWorking
	StatusDone
	StatusError
)

// Event reports one file's progress through ParseDir, for a caller that
// wants to render live progress (cmd/loom's inspect subcommand does, via
// internal/ui).
type Event struct {
	File   string
	Stage  Stage
	Status Status
}
