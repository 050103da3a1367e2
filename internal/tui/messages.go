package tui

// Messages delivered back into the update loop by asynchronous commands.
// Remote failures never carry structure beyond the error itself; the update
// loop decides which banner to show.

type sessionCheckedMsg struct {
	authenticated bool
}

type signInResultMsg struct {
	err error
}

type signOutDoneMsg struct{}

type inventoryLoadedMsg struct {
	err error
}

type ordersLoadedMsg struct {
	err error
}

type itemSavedMsg struct {
	err error
}

type statusChangedMsg struct {
	err error
}

type trackingSavedMsg struct {
	err error
}

type exportDoneMsg struct {
	err error
}

type slipOpenedMsg struct {
	err error
}
