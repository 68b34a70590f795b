package cfgerrors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vektah/gqlparser/v2/gqlerror"
)

func TestError(t *testing.T) {
	err := NewError(ValidationError, errors.New("error"))

	assert.Equal(t, "error", err.Error())
	assert.Equal(t, ValidationError, err.Code)

	err.WithSource("schema.graphql")
	assert.Equal(t, "schema.graphql: error", err.Error())

	l := ErrorList{err, err}
	assert.Equal(t, "schema.graphql: error. schema.graphql: error", l.Error())
}

func TestExtendErrorList(t *testing.T) {
	errs := ErrorList{NewError(ValidationError, errors.New("first"))}

	errs = ExtendErrorList(errs, errors.New("second"))
	errs = ExtendErrorList(errs, &gqlerror.Error{Message: "third"})

	assert.Len(t, errs, 3)
	assert.Equal(t, UndefinedError, errs[1].Code)
	assert.Equal(t, DecodeError, errs[2].Code)
}

func TestFormatError(t *testing.T) {
	for _, e := range []error{
		NewError(UndefinedError, errors.New("error")),
		ErrorList{NewError(UndefinedError, errors.New("error"))},
		errors.New("error"),
	} {
		actual := FormatError(e)
		assert.Len(t, actual, 1)
		assert.Equal(t, "error", actual[0].Message)
		assert.Equal(t, UndefinedError, actual[0].Code)
	}
}

func TestFormatErrorGqlerror(t *testing.T) {
	e := &gqlerror.Error{
		Message:   "unexpected token",
		Locations: []gqlerror.Location{{Line: 3, Column: 7}},
	}

	actual := FormatError(e)
	assert.Len(t, actual, 1)
	assert.Equal(t, DecodeError, actual[0].Code)
	assert.Equal(t, []Location{{Line: 3, Column: 7}}, actual[0].Locations)

	list := FormatError(gqlerror.List{e, e})
	assert.Len(t, list, 2)
}

func TestFormatErrorNilValue(t *testing.T) {
	assert.Nil(t, FormatError(nil))
}

func TestAsError(t *testing.T) {
	var errs ErrorList
	assert.NoError(t, errs.AsError())

	errs = append(errs, NewError(ValidationError, errors.New("boom")))
	assert.Error(t, errs.AsError())
}
