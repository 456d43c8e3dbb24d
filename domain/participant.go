// Package domain contains core concepts of the companion system.
// This file defines user profiles.
// No runtime, network, or UI logic should be added here.
package domain

type Gender string

const (
	Male   Gender = "male"
	Female Gender = "female"
)

type UserProfile struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Gender        Gender `json:"gender"`
	Avatar        string `json:"avatar"`
	PhoneVerified bool   `json:"isPhoneVerified,omitempty"`
}

// Display is the name and avatar shown as a header for a participant.
type Display struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

func (u UserProfile) Display() Display {
	return Display{Name: u.Name, Avatar: u.Avatar}
}
