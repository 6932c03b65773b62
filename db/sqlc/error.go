package db

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrUnknownEmoji     = errors.New("unknown emoji")
	ErrInvalidCategory  = errors.New("invalid emoji category")
	ErrDuplicateSetting = errors.New("duplicate emoji setting")
)

// Kind classifies a failed store operation.
type Kind string

const (
	KindNotFound   Kind = "not_found"
	KindInvalid    Kind = "invalid"
	KindConflict   Kind = "conflict"
	KindRelation   Kind = "relation"
	KindPermission Kind = "permission"
	KindInternal   Kind = "internal"
)

// Entities
const (
	entEmojiSetting = "emoji-setting"
)

// OpError describes a failed store operation.
type OpError struct {
	Op     string
	Kind   Kind
	Entity string
	UserID int64
	Input  string
	Err    error
}

func (e *OpError) Error() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "%s: %s %s", e.Op, e.Kind, e.Entity)
	if e.UserID != 0 {
		fmt.Fprintf(&sb, " user=%d", e.UserID)
	}
	if e.Input != "" {
		fmt.Fprintf(&sb, " input=%q", e.Input)
	}
	if e.Err != nil {
		sb.WriteString(": ")
		sb.WriteString(e.Err.Error())
	}

	return sb.String()
}

func (e *OpError) Unwrap() error {
	return e.Err
}

type opOption func(*OpError)

func withUser(id int64) opOption {
	return func(e *OpError) {
		e.UserID = id
	}
}

func withInput(input string) opOption {
	return func(e *OpError) {
		e.Input = input
	}
}

func newOpError(op string, kind Kind, entity string, err error, opts ...opOption) *OpError {
	opErr := &OpError{
		Op:     op,
		Kind:   kind,
		Entity: entity,
		Err:    err,
	}

	for _, opt := range opts {
		opt(opErr)
	}

	return opErr
}

// opDetails are the optional facts attached to an SQL error.
type opDetails struct {
	userID int64
	entity string
	input  string
}

// sqlError classifies the database error by its Postgres SQLSTATE code.
func sqlError(op string, details opDetails, err error) *OpError {
	kind := KindInternal

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == "23505":
			kind = KindConflict
		case pgErr.Code == "23503":
			kind = KindRelation
		case pgErr.Code == "23514", pgErr.Code == "23502", strings.HasPrefix(pgErr.Code, "22"):
			kind = KindInvalid
		case pgErr.Code == "42501":
			kind = KindPermission
		}
	}

	return newOpError(
		op,
		kind,
		details.entity,
		err,
		withUser(details.userID),
		withInput(details.input),
	)
}
