package domain

import "github.com/samber/lo"

type EventStatus string

const (
	Recruiting EventStatus = "recruiting"
	Full       EventStatus = "full"
	Completed  EventStatus = "completed"
)

type ApplicantStatus string

const (
	Pending  ApplicantStatus = "pending"
	Approved ApplicantStatus = "approved"
	Rejected ApplicantStatus = "rejected"
)

// ActivityTypes are the tags an event can be filtered by.
var ActivityTypes = []string{"旅行", "棋牌", "运动", "读书", "聚餐", "其他"}

type Applicant struct {
	UserID     string          `json:"userId"`
	UserName   string          `json:"userName"`
	UserAvatar string          `json:"userAvatar"`
	UserGender Gender          `json:"userGender"`
	Status     ApplicantStatus `json:"status"`
	ApplyTime  string          `json:"applyTime"`
	Intro      string          `json:"intro"`
}

// TripEvent is an activity looking for companions.
// Comments hold the consultation history in insertion order.
type TripEvent struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Destination string      `json:"destination"`
	Date        string      `json:"date"`
	Tags        []string    `json:"tags"`
	AgeRange    string      `json:"ageRange"`
	GenderReq   string      `json:"genderReq"`
	Organizer   UserProfile `json:"organizer"`
	Capacity    int         `json:"capacity"`
	Enrolled    int         `json:"enrolled"`
	Status      EventStatus `json:"status"`
	Comments    []Message   `json:"comments"`
	Applicants  []Applicant `json:"applicants"`
	GroupChatID string      `json:"groupChatId,omitempty"`
}

func (e TripEvent) EnrolledCount() int {
	return lo.CountBy(e.Applicants, func(a Applicant) bool { return a.Status == Approved })
}

func (e TripEvent) PendingCount() int {
	return lo.CountBy(e.Applicants, func(a Applicant) bool { return a.Status == Pending })
}

// IsFull is true once the event is marked full or approvals reached capacity.
func (e TripEvent) IsFull() bool {
	return e.Status == Full || e.EnrolledCount() >= e.Capacity
}

func (e TripEvent) ApplicantOf(userID string) (Applicant, bool) {
	return lo.Find(e.Applicants, func(a Applicant) bool { return a.UserID == userID })
}

func (e TripEvent) HasTag(tag string) bool {
	return lo.Contains(e.Tags, tag)
}

// IsMember reports whether the user belongs to the team: the organizer or an approved applicant.
func (e TripEvent) IsMember(userID string) bool {
	if e.Organizer.ID == userID {
		return true
	}
	applicant, found := e.ApplicantOf(userID)
	return found && applicant.Status == Approved
}
