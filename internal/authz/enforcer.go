// Package authz gates routes by role and capability through a casbin
// enforcer. The current policy mirrors the application's observed access
// model: both roles hold every entity capability, and only the dashboard
// resources differ per role. Tightening a capability later is a policy
// edit, not a code change.
package authz

import (
	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
)

const rbacModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.sub == p.sub && r.obj == p.obj && r.act == p.act
`

const (
	RoleSuperAdmin = "super_admin"
	RoleStaff      = "staff"

	ResourceAdminDashboard    = "dashboard:admin"
	ResourceEmployeeDashboard = "dashboard:employee"
)

// EntityResources are the CRUD-managed resource names.
var EntityResources = []string{
	"employee",
	"inventory",
	"task",
	"clock_record",
	"holiday_request",
}

var entityActions = []string{"create", "read", "update", "delete"}

type Enforcer struct {
	e *casbin.Enforcer
}

func NewEnforcer() (*Enforcer, error) {
	m, err := model.NewModelFromString(rbacModel)
	if err != nil {
		return nil, err
	}

	e, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, err
	}

	for _, role := range []string{RoleSuperAdmin, RoleStaff} {
		for _, resource := range EntityResources {
			for _, action := range entityActions {
				if _, err := e.AddPolicy(role, resource, action); err != nil {
					return nil, err
				}
			}
		}
		if _, err := e.AddPolicy(role, ResourceEmployeeDashboard, "read"); err != nil {
			return nil, err
		}
	}

	if _, err := e.AddPolicy(RoleSuperAdmin, ResourceAdminDashboard, "read"); err != nil {
		return nil, err
	}

	return &Enforcer{e: e}, nil
}

func (a *Enforcer) Authorize(role, resource, action string) (bool, error) {
	return a.e.Enforce(role, resource, action)
}
