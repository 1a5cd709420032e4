package domain

import "testing"

func TestApplicationStatus_CanTransitionTo(t *testing.T) {
	cases := []struct {
		from, to ApplicationStatus
		want     bool
	}{
		{StatusPending, StatusAccepted, true},
		{StatusPending, StatusRejected, true},
		{StatusPending, StatusPending, true},
		{StatusAccepted, StatusAccepted, true},
		{StatusAccepted, StatusPending, false},
		{StatusAccepted, StatusRejected, false},
		{StatusRejected, StatusRejected, true},
		{StatusRejected, StatusAccepted, false},
	}

	for _, tc := range cases {
		if got := tc.from.CanTransitionTo(tc.to); got != tc.want {
			t.Errorf("%s -> %s: got %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestValidStatus(t *testing.T) {
	for _, s := range []ApplicationStatus{StatusPending, StatusAccepted, StatusRejected} {
		if !ValidStatus(s) {
			t.Errorf("expected %s to be valid", s)
		}
	}
	if ValidStatus("Bogus") {
		t.Errorf("expected Bogus to be invalid")
	}
}

func TestRoleAllows(t *testing.T) {
	if !RoleAllows(RoleClient, CapPostJob) {
		t.Errorf("client should be allowed to post jobs")
	}
	if RoleAllows(RoleFreelancer, CapPostJob) {
		t.Errorf("freelancer should not be allowed to post jobs")
	}
	if !RoleAllows(RoleFreelancer, CapApplyToJob) {
		t.Errorf("freelancer should be allowed to apply")
	}
	if RoleAllows(RoleClient, CapApplyToJob) {
		t.Errorf("client should not be allowed to apply")
	}
	if RoleAllows("", CapReviewApplications) {
		t.Errorf("empty role should hold no capabilities")
	}
}
