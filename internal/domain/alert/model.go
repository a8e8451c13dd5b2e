package alert

// Alert is the singleton pair of banner messages shown on the home and
// roster pages. Updates are last-writer-wins.
type Alert struct {
	HomeMessage   string
	RosterMessage string
}
