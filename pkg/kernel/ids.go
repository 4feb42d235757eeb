package kernel

import "strings"

type UserID string

func NewUserID(id string) UserID { return UserID(id) }
func (u UserID) String() string  { return string(u) }
func (u UserID) IsEmpty() bool   { return string(u) == "" }

// Equals compares two user identifiers after trimming whitespace, since the
// same identity can arrive from different representations (path param, token
// claim, stored column).
func (u UserID) Equals(other UserID) bool {
	return strings.TrimSpace(string(u)) == strings.TrimSpace(string(other))
}

type JobID string

func NewJobID(id string) JobID { return JobID(id) }
func (j JobID) String() string { return string(j) }
func (j JobID) IsEmpty() bool  { return string(j) == "" }
