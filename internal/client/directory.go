package client

import (
	"fmt"

	"accounts-payable-service/internal/domain/approval"
)

// StaticDirectory maps approval levels to approvers from a fixed table.
// Stands in for the user-management service until that integration lands.
type StaticDirectory struct {
	byLevel map[approval.Level]approval.Approver
}

func NewStaticDirectory() *StaticDirectory {
	return &StaticDirectory{byLevel: map[approval.Level]approval.Approver{
		approval.LevelSupervisor: {UserID: 1001, Name: "Site Supervisor", Email: "supervisor@constructionhub.ca"},
		approval.LevelManager:    {UserID: 1002, Name: "Operations Manager", Email: "manager@constructionhub.ca"},
		approval.LevelDirector:   {UserID: 1003, Name: "Finance Director", Email: "director@constructionhub.ca"},
		approval.LevelCFO:        {UserID: 1004, Name: "Chief Financial Officer", Email: "cfo@constructionhub.ca"},
		approval.LevelCEO:        {UserID: 1005, Name: "Chief Executive Officer", Email: "ceo@constructionhub.ca"},
	}}
}

func (d *StaticDirectory) ApproverFor(level approval.Level) (approval.Approver, error) {
	a, ok := d.byLevel[level]
	if !ok {
		return approval.Approver{}, fmt.Errorf("no approver configured for level %s", level)
	}
	return a, nil
}
