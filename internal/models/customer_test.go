package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/suite"
)

type CustomerTestSuite struct {
	suite.Suite
}

func TestCustomerTestSuite(t *testing.T) {
	suite.Run(t, new(CustomerTestSuite))
}

func (s *CustomerTestSuite) TestCustomer_JSONFieldNames() {
	data, err := json.Marshal(Customer{ID: 7, FirstName: "Ada", SurName: "Lovelace"})
	s.NoError(err)
	s.JSONEq(`{"id":7,"firstName":"Ada","surName":"Lovelace"}`, string(data))
}

func (s *CustomerTestSuite) TestCustomer_TableName() {
	s.Equal("customers", Customer{}.TableName())
}

func (s *CustomerTestSuite) TestCustomer_SameDetails() {
	a := Customer{ID: 1, FirstName: "Ada", SurName: "Lovelace"}

	s.True(a.SameDetails(Customer{ID: 2, FirstName: "Ada", SurName: "Lovelace"}))
	s.False(a.SameDetails(Customer{ID: 1, FirstName: "Ada", SurName: "Byron"}))
	s.False(a.SameDetails(Customer{ID: 1, FirstName: "Augusta", SurName: "Lovelace"}))
}
