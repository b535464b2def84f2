package dto

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"customer-service/internal/models"
)

// ErrMalformedCustomer is returned when a request body cannot be read as a customer
var ErrMalformedCustomer = errors.New("malformed customer payload")

// CustomerPayload represents the request body for creating a customer.
// ID is accepted for compatibility and always replaced by the store.
type CustomerPayload struct {
	ID        *ScalarID  `json:"id,omitempty"`
	FirstName ScalarText `json:"firstName"`
	SurName   ScalarText `json:"surName"`
}

// ToModel converts the payload to a customer without an identifier
func (p *CustomerPayload) ToModel() *models.Customer {
	return &models.Customer{
		FirstName: string(p.FirstName),
		SurName:   string(p.SurName),
	}
}

// ScalarText is a name field. Numbers and booleans are kept as their JSON text,
// null leaves the field empty, objects and arrays are rejected.
type ScalarText string

func (t *ScalarText) UnmarshalJSON(data []byte) error {
	v, err := decodeScalar(data)
	if err != nil {
		return err
	}

	switch x := v.(type) {
	case nil:
	case string:
		*t = ScalarText(x)
	case json.Number:
		*t = ScalarText(x.String())
	case bool:
		*t = ScalarText(strconv.FormatBool(x))
	default:
		return fmt.Errorf("cannot use %T as text", v)
	}
	return nil
}

// ScalarID is the client-supplied id. Any number or numeric string is accepted
// since the store assigns the real one.
type ScalarID string

func (id *ScalarID) UnmarshalJSON(data []byte) error {
	v, err := decodeScalar(data)
	if err != nil {
		return err
	}

	switch x := v.(type) {
	case nil:
	case json.Number:
		*id = ScalarID(x.String())
	case string:
		if _, err := strconv.ParseFloat(x, 64); err != nil {
			return fmt.Errorf("id %q is not a number", x)
		}
		*id = ScalarID(x)
	default:
		return fmt.Errorf("cannot use %T as id", v)
	}
	return nil
}

func decodeScalar(data []byte) (interface{}, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}

// DecodeCustomer reads a single JSON object from r.
// Unknown fields are ignored and missing names default to "".
// An empty body, a JSON null or anything that is not an object yields ErrMalformedCustomer.
func DecodeCustomer(r io.Reader) (*models.Customer, error) {
	if r == nil {
		return nil, fmt.Errorf("%w: request body is empty", ErrMalformedCustomer)
	}

	var payload *CustomerPayload
	if err := json.NewDecoder(r).Decode(&payload); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: request body is empty", ErrMalformedCustomer)
		}
		return nil, fmt.Errorf("%w: %v", ErrMalformedCustomer, err)
	}

	if payload == nil {
		return nil, fmt.Errorf("%w: request body is null", ErrMalformedCustomer)
	}

	return payload.ToModel(), nil
}

// MarshalCustomers encodes customers as a JSON array, "[]" when there are none
func MarshalCustomers(customers []models.Customer) ([]byte, error) {
	if customers == nil {
		customers = []models.Customer{}
	}
	return json.Marshal(customers)
}
