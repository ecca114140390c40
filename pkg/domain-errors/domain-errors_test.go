package domainerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"
)

type DomainErrorsSuite struct {
	suite.Suite
}

func TestDomainErrorsSuite(t *testing.T) {
	suite.Run(t, new(DomainErrorsSuite))
}

func (s *DomainErrorsSuite) TestErrorInterface() {
	s.Run("returns message when present", func() {
		err := &Error{Code: CodeNotFound, Message: "credential not found"}
		s.Equal("credential not found", err.Error())
	})

	s.Run("returns code when message is empty", func() {
		err := &Error{Code: CodeNotFound}
		s.Equal("not_found", err.Error())
	})
}

func (s *DomainErrorsSuite) TestIsMatching() {
	s.Run("matches by code only", func() {
		err1 := New(CodeValidation, "The credential is malformed")
		err2 := New(CodeValidation, "Invalid NFT")
		s.True(errors.Is(err1, err2))
	})

	s.Run("does not match different codes", func() {
		s.False(errors.Is(New(CodeNotFound, "x"), New(CodeInternal, "x")))
	})

	s.Run("matches through fmt wrapping", func() {
		err := fmt.Errorf("get credential: %w", New(CodeUnsupported, "Unsupported retrieval endpoint https://x"))
		s.True(HasCode(err, CodeUnsupported))
	})
}

func (s *DomainErrorsSuite) TestWrap() {
	s.Run("preserves the original domain code", func() {
		inner := New(CodeNotFound, "credential not found")
		wrapped := Wrap(inner, CodeInternal, "lookup failed")
		s.True(HasCode(wrapped, CodeNotFound))
		s.Equal("lookup failed", wrapped.Error())
	})

	s.Run("applies code to plain errors", func() {
		wrapped := Wrap(errors.New("rpc down"), CodeUnavailable, "Failed to check if NFT is burned")
		s.True(HasCode(wrapped, CodeUnavailable))
		s.Equal("rpc down", errors.Unwrap(wrapped).Error())
	})
}
