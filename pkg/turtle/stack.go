package turtle

type frame[P any, B any] struct {
	position P
	bearing  B
}

// orientationStack is the LIFO of saved poses owned by a single turtle.
type orientationStack[P any, B any] struct {
	frames []frame[P, B]
}

func (s *orientationStack[P, B]) push(p P, b B) {
	s.frames = append(s.frames, frame[P, B]{position: p, bearing: b})
}

func (s *orientationStack[P, B]) pop() (P, B, bool) {
	if len(s.frames) == 0 {
		var p P
		var b B
		return p, b, false
	}
	top := s.frames[len(s.frames)-1]
	s.frames = s.frames[:len(s.frames)-1]
	return top.position, top.bearing, true
}

func (s *orientationStack[P, B]) depth() int {
	return len(s.frames)
}
