package errors_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/warbandforge/warband-api/internal/errors"
)

type ErrorsTestSuite struct {
	suite.Suite
}

func TestErrorsSuite(t *testing.T) {
	suite.Run(t, new(ErrorsTestSuite))
}

func (s *ErrorsTestSuite) TestNewError() {
	testCases := []struct {
		name     string
		code     errors.Code
		message  string
		expected string
	}{
		{
			name:     "not found error",
			code:     errors.CodeNotFound,
			message:  "warband not found",
			expected: "NOT_FOUND: warband not found",
		},
		{
			name:     "invalid argument error",
			code:     errors.CodeInvalidArgument,
			message:  "invalid warband code",
			expected: "INVALID_ARGUMENT: invalid warband code",
		},
		{
			name:     "resource exhausted error",
			code:     errors.CodeResourceExhausted,
			message:  "weapon slots full",
			expected: "RESOURCE_EXHAUSTED: weapon slots full",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := errors.New(tc.code, tc.message)
			s.Assert().Equal(tc.expected, err.Error())
			s.Assert().Equal(tc.code, err.Code)
			s.Assert().Equal(tc.message, err.Message)
		})
	}
}

func (s *ErrorsTestSuite) TestErrorWithMeta() {
	err := errors.ResourceExhausted("equipment slots full").
		WithMeta("cap", 2).
		WithMeta("attribute", "resilience")

	s.Assert().Equal(2, err.Meta["cap"])
	s.Assert().Equal("resilience", err.Meta["attribute"])
}

func (s *ErrorsTestSuite) TestWrap() {
	baseErr := fmt.Errorf("connection refused")
	wrapped := errors.Wrap(baseErr, "failed to load warband")

	s.Assert().Equal(errors.CodeInternal, wrapped.Code)
	s.Assert().Equal("failed to load warband", wrapped.Message)
	s.Assert().Equal(baseErr, wrapped.Unwrap())
}

func (s *ErrorsTestSuite) TestWrapPreservesCode() {
	baseErr := errors.NotFound("record not found")
	wrapped := errors.Wrap(baseErr, "warband not found")

	s.Assert().Equal(errors.CodeNotFound, wrapped.Code)
	s.Assert().Equal("warband not found", wrapped.Message)
	s.Assert().Equal(baseErr, wrapped.Unwrap())
}

func (s *ErrorsTestSuite) TestWrapWithCode() {
	baseErr := fmt.Errorf("illegal base64 data")
	wrapped := errors.WrapWithCode(baseErr, errors.CodeInvalidArgument, "invalid warband code")

	s.Assert().Equal(errors.CodeInvalidArgument, wrapped.Code)
	s.Assert().Equal("invalid warband code", wrapped.Message)
	s.Assert().Equal(baseErr, wrapped.Unwrap())
}

func (s *ErrorsTestSuite) TestWrapNil() {
	s.Assert().Nil(errors.Wrap(nil, "should be nil"))
	s.Assert().Nil(errors.WrapWithCode(nil, errors.CodeInternal, "should be nil"))
}

func (s *ErrorsTestSuite) TestIs() {
	err := errors.NotFound("warband not found")

	s.Assert().True(errors.Is(err, errors.NotFound("anything with the same code")))
	s.Assert().False(errors.Is(err, errors.InvalidArgument("different code")))
}

func (s *ErrorsTestSuite) TestGetCode() {
	s.Assert().Equal(errors.CodeOK, errors.GetCode(nil))
	s.Assert().Equal(errors.CodeNotFound, errors.GetCode(errors.NotFound("missing")))
	s.Assert().Equal(errors.CodeInternal, errors.GetCode(fmt.Errorf("plain error")))

	wrapped := errors.Wrap(errors.FailedPrecondition("faction mismatch"), "commit failed")
	s.Assert().Equal(errors.CodeFailedPrecondition, errors.GetCode(wrapped))
}

func (s *ErrorsTestSuite) TestTypeCheckers() {
	s.Assert().True(errors.IsNotFound(errors.NotFound("missing")))
	s.Assert().True(errors.IsInvalidArgument(errors.InvalidArgument("bad input")))
	s.Assert().True(errors.IsAlreadyExists(errors.AlreadyExists("duplicate")))
	s.Assert().True(errors.IsResourceExhausted(errors.ResourceExhausted("slots full")))
	s.Assert().True(errors.IsFailedPrecondition(errors.FailedPrecondition("wrong faction")))
	s.Assert().False(errors.IsNotFound(errors.Internal("boom")))
}

func (s *ErrorsTestSuite) TestGetMessage() {
	s.Assert().Equal("", errors.GetMessage(nil))
	s.Assert().Equal("warband not found", errors.GetMessage(errors.NotFound("warband not found")))
	s.Assert().Equal("plain error", errors.GetMessage(fmt.Errorf("plain error")))
}
