package pipeline

// Reporter receives per-frame progress while map pages render. Calls are
// serialized by the runner.
type Reporter interface {
	Start(total int)
	Update(current int, message string)
	Finish()
}

type nopReporter struct{}

func (nopReporter) Start(int)          {}
func (nopReporter) Update(int, string) {}
func (nopReporter) Finish()            {}
