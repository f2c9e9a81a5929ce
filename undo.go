package main

// Undo moves the most recently committed shape onto the redo stack.
func (s *Scene) Undo() bool {
	if len(s.committed) == 0 {
		return false
	}

	lastIndex := len(s.committed) - 1
	shape := s.committed[lastIndex]
	s.committed = s.committed[:lastIndex]

	s.redoStack = append(s.redoStack, shape)
	return true
}

// Redo restores the last undone shape. It is appended on top of the
// committed list, not reinserted at its old depth.
func (s *Scene) Redo() bool {
	if len(s.redoStack) == 0 {
		return false
	}

	lastIndex := len(s.redoStack) - 1
	shape := s.redoStack[lastIndex]
	s.redoStack = s.redoStack[:lastIndex]

	s.committed = append(s.committed, shape)
	return true
}
