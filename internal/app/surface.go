package app

import "github.com/raysh454/compliscan/internal/report"

// Surface is the UI the orchestrator drives. Each session owns one.
type Surface interface {
	// Notify shows a blocking notification for a failed submission.
	Notify(err error)

	// ResetReport hides the report and clears the issue list. Safe to call
	// when nothing is shown.
	ResetReport()

	// EnterBusy disables the trigger, swaps its label and shows progress.
	EnterBusy()

	// ExitBusy undoes EnterBusy.
	ExitBusy()

	// ShowReport reveals the rendered report.
	ShowReport(v *report.View)
}

// InteractionState is Idle or Busy.
type InteractionState int32

const (
	StateIdle InteractionState = iota
	StateBusy
)

func (s InteractionState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateBusy:
		return "busy"
	}
	return "unknown"
}
