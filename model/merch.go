package model

import (
	"fmt"
	"slices"
)

// ChargeType is how a merchandise is billed.
type ChargeType string

// Charge types. The zero value reads as ChargeTypeUnknown.
const (
	ChargeTypeUnknown  ChargeType = "Unknown"
	ChargeTypePrePaid  ChargeType = "PrePaid"
	ChargeTypePostPaid ChargeType = "PostPaid"
)

var chargeTypes = []ChargeType{ChargeTypeUnknown, ChargeTypePrePaid, ChargeTypePostPaid}

// String returns the wire name.
func (c ChargeType) String() string {
	if c == "" {
		return string(ChargeTypeUnknown)
	}
	return string(c)
}

// ParseChargeType returns the ChargeType named s.
func ParseChargeType(s string) (ChargeType, error) {
	c := ChargeType(s)
	if !slices.Contains(chargeTypes, c) {
		return "", fmt.Errorf("unknown charge type %q", s)
	}
	return c, nil
}

// PublishState is whether a merchandise is on sale.
type PublishState string

// Publish states. The zero value reads as PublishStateUnknown.
const (
	PublishStateUnknown PublishState = "Unknown"
	PublishStateUp      PublishState = "Up"
	PublishStateDown    PublishState = "Down"
)

var publishStates = []PublishState{PublishStateUnknown, PublishStateUp, PublishStateDown}

// String returns the wire name.
func (p PublishState) String() string {
	if p == "" {
		return string(PublishStateUnknown)
	}
	return string(p)
}

// ParsePublishState returns the PublishState named s.
func ParsePublishState(s string) (PublishState, error) {
	p := PublishState(s)
	if !slices.Contains(publishStates, p) {
		return "", fmt.Errorf("unknown publish state %q", s)
	}
	return p, nil
}

// Merchandise is a billable product.
type Merchandise struct {
	ID            string       `json:"Id"`
	Name          string       `json:"Name"`
	ChargeType    ChargeType   `json:"ChargeType"`
	UnitPrice     float64      `json:"UnitPrice"`
	QuantityUnit  string       `json:"QuantityUnit"`
	Formula       string       `json:"Formula"`
	YSProduct     string       `json:"YSProduct"`
	OutResourceID string       `json:"OutResourceId"`
	PublishState  PublishState `json:"PublishState"`
	Description   string       `json:"Description"`
}

// SpecialPrice overrides a merchandise's unit price for one account.
type SpecialPrice struct {
	MerchandiseID string  `json:"MerchandiseId"`
	AccountID     string  `json:"AccountId"`
	UnitPrice     float64 `json:"UnitPrice"`
}

// Order is a purchase of a merchandise by an account.
type Order struct {
	ID            string     `json:"Id"`
	MerchandiseID string     `json:"MerchandiseId"`
	AccountID     string     `json:"AccountId"`
	Quantity      float64    `json:"Quantity"`
	Comment       string     `json:"Comment"`
	ChargeType    ChargeType `json:"ChargeType"`
	CreateTime    string     `json:"CreateTime"`
}
