// Package bt 一个最小的行为树，黑板类型由使用方决定
package bt

type Status int

const (
	StatusSuccess Status = iota
	StatusFailure
	StatusRunning
)

func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "Success"
	case StatusFailure:
		return "Failure"
	case StatusRunning:
		return "Running"
	}
	return "Unknown"
}

type Node[B any] interface {
	Tick(bb B) Status
}

// Selector 依次尝试子节点，直到有一个不是 Failure
type Selector[B any] struct {
	Children []Node[B]
}

func (s *Selector[B]) Tick(bb B) Status {
	for _, child := range s.Children {
		if status := child.Tick(bb); status != StatusFailure {
			return status
		}
	}
	return StatusFailure
}

// Sequence 依次执行子节点，直到有一个不是 Success
type Sequence[B any] struct {
	Children []Node[B]
}

func (s *Sequence[B]) Tick(bb B) Status {
	for _, child := range s.Children {
		if status := child.Tick(bb); status != StatusSuccess {
			return status
		}
	}
	return StatusSuccess
}

type Condition[B any] struct {
	Check func(bb B) bool
}

func (c *Condition[B]) Tick(bb B) Status {
	if c.Check == nil || !c.Check(bb) {
		return StatusFailure
	}
	return StatusSuccess
}

type Action[B any] struct {
	Do func(bb B) Status
}

func (a *Action[B]) Tick(bb B) Status {
	if a.Do == nil {
		return StatusFailure
	}
	return a.Do(bb)
}

// Inverter 交换 Success 和 Failure，Running 不变
type Inverter[B any] struct {
	Child Node[B]
}

func (i *Inverter[B]) Tick(bb B) Status {
	switch i.Child.Tick(bb) {
	case StatusSuccess:
		return StatusFailure
	case StatusFailure:
		return StatusSuccess
	}
	return StatusRunning
}

func Select[B any](children ...Node[B]) *Selector[B] { return &Selector[B]{Children: children} }

func Seq[B any](children ...Node[B]) *Sequence[B] { return &Sequence[B]{Children: children} }

func If[B any](check func(bb B) bool) *Condition[B] { return &Condition[B]{Check: check} }

func Do[B any](do func(bb B) Status) *Action[B] { return &Action[B]{Do: do} }

func Not[B any](child Node[B]) *Inverter[B] { return &Inverter[B]{Child: child} }
