// Package authz holds the pure authorization policy: given an actor and a
// target it returns an allow/deny decision and never touches storage.
package authz

import "complaint_system/internal/domain"

type Reason string

const (
	ReasonOK            Reason = "ok"
	ReasonAdminOnly     Reason = "admin_only"
	ReasonNotOwner      Reason = "not_owner"
	ReasonNotAssigned   Reason = "not_assigned"
	ReasonComplaintDone Reason = "complaint_closed"
)

// Decision is the result of a policy check.
type Decision struct {
	Allowed bool
	Reason  Reason
}

func allow() Decision        { return Decision{Allowed: true, Reason: ReasonOK} }
func deny(r Reason) Decision { return Decision{Allowed: false, Reason: r} }

// CanViewComplaint allows the submitter, the assigned staff, or any admin.
func CanViewComplaint(actor *domain.User, c *domain.Complaint) Decision {
	if actor.IsAdmin {
		return allow()
	}
	if c.UserID == actor.ID {
		return allow()
	}
	if c.AssignedTo != nil && *c.AssignedTo == actor.ID {
		return allow()
	}
	return deny(ReasonNotOwner)
}

// CanComment allows the owning non-admin user, or an admin who is the
// assigned staff. Closed complaints accept no comments from anyone.
func CanComment(actor *domain.User, c *domain.Complaint) Decision {
	if actor.IsAdmin {
		if c.AssignedTo == nil || *c.AssignedTo != actor.ID {
			return deny(ReasonNotAssigned)
		}
	} else if c.UserID != actor.ID {
		return deny(ReasonNotOwner)
	}
	if c.Closed() {
		return deny(ReasonComplaintDone)
	}
	return allow()
}

// CanSetStatus allows admins only. Whether the target status is a legal value
// is input validation, not a policy concern.
func CanSetStatus(actor *domain.User) Decision {
	if !actor.IsAdmin {
		return deny(ReasonAdminOnly)
	}
	return allow()
}

// CanAssign allows admins only.
func CanAssign(actor *domain.User) Decision {
	if !actor.IsAdmin {
		return deny(ReasonAdminOnly)
	}
	return allow()
}

// CanDelete allows admins only.
func CanDelete(actor *domain.User) Decision {
	if !actor.IsAdmin {
		return deny(ReasonAdminOnly)
	}
	return allow()
}

// CanReadNotification allows only the notification's target user.
func CanReadNotification(actor *domain.User, n *domain.Notification) Decision {
	if n.UserID != actor.ID {
		return deny(ReasonNotOwner)
	}
	return allow()
}
