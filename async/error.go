// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package async

import "code.hybscloud.com/nbio"

// IOError is the single error type a scheduler sees from this package.
//
// It unifies the two zero-progress conditions with the domain errors of the
// wrapped capability, so read and write paths share one error contract.
type IOError struct {
	Kind nbio.ErrorKind
	Msg  string // static description for WriteZero / UnexpectedEOF
	Err  error  // wrapped domain error for Other
}

// WriteZeroError reports a write that made no progress.
func WriteZeroError(msg string) *IOError {
	return &IOError{Kind: nbio.KindWriteZero, Msg: msg}
}

// UnexpectedEOFError reports a read that ended before its target length.
func UnexpectedEOFError(msg string) *IOError {
	return &IOError{Kind: nbio.KindUnexpectedEOF, Msg: msg}
}

// Wrap converts err into an *IOError.
//
// An *IOError is returned unchanged and an *nbio.Error keeps its kind; any
// other error becomes KindOther. Wrap(nil) is nil.
func Wrap(err error) *IOError {
	if err == nil {
		return nil
	}
	if e, ok := err.(*IOError); ok {
		return e
	}
	if ne, ok := err.(*nbio.Error); ok {
		switch ne.Kind {
		case nbio.KindUnexpectedEOF:
			return UnexpectedEOFError("failed to fill whole buffer")
		case nbio.KindWriteZero:
			return WriteZeroError("failed to write whole buffer")
		default:
			return &IOError{Kind: nbio.KindOther, Err: ne.Err}
		}
	}
	return &IOError{Kind: nbio.KindOther, Err: err}
}

func (e *IOError) Error() string {
	if e.Kind == nbio.KindOther {
		if e.Err == nil {
			return "async: <nil>"
		}
		return "async: " + e.Err.Error()
	}
	if e.Msg == "" {
		return "async: " + e.Kind.String()
	}
	return "async: " + e.Kind.String() + ": " + e.Msg
}

func (e *IOError) Unwrap() error {
	switch e.Kind {
	case nbio.KindUnexpectedEOF:
		return nbio.ErrUnexpectedEOF
	case nbio.KindWriteZero:
		return nbio.ErrWriteZero
	default:
		return e.Err
	}
}
