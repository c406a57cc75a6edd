package service

//go:generate stringer -type=State
type State int

const (
	Stopped State = iota + 1
	Starting
	Started
	Stopping
)

type Event struct {
	State State
	Err   error
}
