package presenter

// Loop drives periodic presenter updates.
//
// It calls Tick on the region presenter and then invokes a scheduler
// callback. The zero value is usable (methods are nil-safe).
type Loop struct {
	Region   *RegionPresenter
	Pointer  func()
	Schedule func()
}

func NewLoop(region *RegionPresenter, pointer func(), schedule func()) *Loop {
	return &Loop{Region: region, Pointer: pointer, Schedule: schedule}
}

func (l *Loop) Tick() {
	if l == nil {
		return
	}
	// Poll the pointer first so this tick paints its effect.
	if l.Pointer != nil {
		l.Pointer()
	}
	if l.Region != nil {
		l.Region.Tick()
	}
	if l.Schedule != nil {
		l.Schedule()
	}
}
