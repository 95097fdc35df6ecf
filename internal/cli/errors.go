package cli

import "fmt"

type frameError struct {
	frame int
	err   error
}

func (e frameError) Error() string {
	return fmt.Sprintf("frame %d: %v", e.frame, e.err)
}

func (e frameError) Unwrap() error { return e.err }

func errFrame(frame int, err error) error {
	return frameError{frame: frame, err: err}
}

type unknownTopicError struct {
	topic string
}

func (e unknownTopicError) Error() string {
	return fmt.Sprintf("unknown docs topic: %q (run `pickdate docs` to list topics)", e.topic)
}
