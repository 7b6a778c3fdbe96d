package request

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
)

// Body fields of a seating filter payload.
const (
	FieldSeatingType = "seatingType"
	FieldSeatType    = "seatType"
)

// Reason says why a single payload field was rejected.
type Reason string

const (
	ReasonMissing           Reason = "missing"
	ReasonWrongType         Reason = "wrong-type"
	ReasonElementNotNumeric Reason = "element-not-numeric"
)

const (
	tagIDSequence = "id_seq"
	tagIDElements = "id_elems"
)

// PayloadGuard checks an untyped request body and hands it back unchanged when it is acceptable.
type PayloadGuard func(payload any) (any, error)

// FieldError describes one rejected field. Index points at the offending
// element for ReasonElementNotNumeric and is -1 otherwise.
type FieldError struct {
	Field  string `json:"field"`
	Reason Reason `json:"reason"`
	Index  int    `json:"index"`
}

func (fe FieldError) Message() string {
	switch fe.Reason {
	case ReasonMissing:
		return "This field is required"
	case ReasonWrongType:
		return "Must be an array of numeric ids"
	case ReasonElementNotNumeric:
		return fmt.Sprintf("Element at index %d is not a numeric id", fe.Index)
	default:
		return fmt.Sprintf("Invalid %s field", fe.Field)
	}
}

// ValidationError lists every field of a payload that failed its shape check.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, fe := range e.Fields {
		if fe.Reason == ReasonElementNotNumeric {
			parts[i] = fmt.Sprintf("%s: %s at index %d", fe.Field, fe.Reason, fe.Index)
			continue
		}
		parts[i] = fmt.Sprintf("%s: %s", fe.Field, fe.Reason)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Messages renders the failures the way utils.ValidateStruct does, field -> message.
func (e *ValidationError) Messages() map[string]string {
	msgs := make(map[string]string, len(e.Fields))
	for _, fe := range e.Fields {
		msgs[fe.Field] = fe.Message()
	}
	return msgs
}

// SeatingFilter is the typed form of a validated seating filter payload.
type SeatingFilter struct {
	SeatingTypeIDs []int64
	SeatTypeIDs    []int64
}

var shapeValidate = newShapeValidator()

func newShapeValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation(tagIDSequence, func(fl validator.FieldLevel) bool {
		k := fl.Field().Kind()
		return k == reflect.Slice || k == reflect.Array
	})
	_ = v.RegisterValidation(tagIDElements, func(fl validator.FieldLevel) bool {
		return firstNonNumeric(fl.Field()) < 0
	})
	return v
}

// ValidateSeatingFilter requires seatingType and seatType to be present and
// to hold sequences of whole-number ids. The payload is returned untouched on
// success; otherwise a *ValidationError names every failing field.
func ValidateSeatingFilter(payload any) (any, error) {
	body, _ := payload.(map[string]any)

	var failures []FieldError
	for _, field := range []string{FieldSeatingType, FieldSeatType} {
		if fe, ok := checkIDList(body, field); !ok {
			failures = append(failures, fe)
		}
	}

	if len(failures) > 0 {
		return nil, &ValidationError{Fields: failures}
	}
	return payload, nil
}

// SeatingFilterFromPayload validates payload and converts it to a SeatingFilter
// with duplicate ids dropped.
func SeatingFilterFromPayload(payload any) (SeatingFilter, error) {
	if _, err := ValidateSeatingFilter(payload); err != nil {
		return SeatingFilter{}, err
	}
	body := payload.(map[string]any)

	return SeatingFilter{
		SeatingTypeIDs: lo.Uniq(idsOf(body[FieldSeatingType])),
		SeatTypeIDs:    lo.Uniq(idsOf(body[FieldSeatType])),
	}, nil
}

func checkIDList(body map[string]any, field string) (FieldError, bool) {
	value, present := body[field]
	if !present {
		return FieldError{Field: field, Reason: ReasonMissing, Index: -1}, false
	}
	// validator walks structs instead of applying tags to them
	if rv := indirect(reflect.ValueOf(value)); !rv.IsValid() || rv.Kind() == reflect.Struct {
		return FieldError{Field: field, Reason: ReasonWrongType, Index: -1}, false
	}

	err := shapeValidate.Var(value, tagIDSequence+","+tagIDElements)
	if err == nil {
		return FieldError{}, true
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 && verrs[0].Tag() == tagIDElements {
		return FieldError{
			Field:  field,
			Reason: ReasonElementNotNumeric,
			Index:  firstNonNumeric(indirect(reflect.ValueOf(value))),
		}, false
	}
	return FieldError{Field: field, Reason: ReasonWrongType, Index: -1}, false
}

func firstNonNumeric(seq reflect.Value) int {
	for i := 0; i < seq.Len(); i++ {
		if _, ok := idFromValue(seq.Index(i)); !ok {
			return i
		}
	}
	return -1
}

func idsOf(value any) []int64 {
	seq := indirect(reflect.ValueOf(value))
	ids := make([]int64, 0, seq.Len())
	for i := 0; i < seq.Len(); i++ {
		id, _ := idFromValue(seq.Index(i))
		ids = append(ids, id)
	}
	return ids
}

var jsonNumberType = reflect.TypeOf(json.Number(""))

func indirect(v reflect.Value) reflect.Value {
	for v.Kind() == reflect.Interface || v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return reflect.Value{}
		}
		v = v.Elem()
	}
	return v
}

// idFromValue accepts integer kinds, finite whole floats and json.Number.
func idFromValue(v reflect.Value) (int64, bool) {
	v = indirect(v)

	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int(), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := v.Uint()
		if u > math.MaxInt64 {
			return 0, false
		}
		return int64(u), true
	case reflect.Float32, reflect.Float64:
		return wholeFloat(v.Float())
	case reflect.String:
		if v.Type() != jsonNumberType {
			return 0, false
		}
		n := json.Number(v.String())
		if i, err := n.Int64(); err == nil {
			return i, true
		}
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return wholeFloat(f)
	}
	return 0, false
}

func wholeFloat(f float64) (int64, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	// float64(math.MaxInt64) rounds up to 2^63
	if f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, false
	}
	return int64(f), true
}
