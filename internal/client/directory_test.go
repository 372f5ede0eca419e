package client

import (
	"testing"

	"accounts-payable-service/internal/domain/approval"
)

func TestStaticDirectory_ApproverFor(t *testing.T) {
	d := NewStaticDirectory()

	cases := []struct {
		level  approval.Level
		userID int64
	}{
		{approval.LevelSupervisor, 1001},
		{approval.LevelManager, 1002},
		{approval.LevelDirector, 1003},
		{approval.LevelCFO, 1004},
		{approval.LevelCEO, 1005},
	}
	for _, tc := range cases {
		a, err := d.ApproverFor(tc.level)
		if err != nil {
			t.Fatalf("ApproverFor(%s): %v", tc.level, err)
		}
		if a.UserID != tc.userID {
			t.Fatalf("ApproverFor(%s): userID=%d want %d", tc.level, a.UserID, tc.userID)
		}
		if a.Email == "" || a.Name == "" {
			t.Fatalf("ApproverFor(%s): incomplete approver %+v", tc.level, a)
		}
	}
}

func TestStaticDirectory_UnknownLevel(t *testing.T) {
	d := NewStaticDirectory()
	// AUTOMATIC never needs a human approver, so it has no entry.
	if _, err := d.ApproverFor(approval.LevelAutomatic); err == nil {
		t.Fatalf("expected error for AUTOMATIC level")
	}
}
