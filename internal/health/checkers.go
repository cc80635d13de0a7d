// SPDX-License-Identifier: MIT

package health

import (
	"context"

	"github.com/ManuGH/stash/internal/collection"
)

// RegistryChecker reports the state of the collection registry. The registry
// cannot fail, so the check is always healthy; its value is the counts it
// surfaces in verbose health output.
type RegistryChecker struct {
	registry *collection.Registry
}

// NewRegistryChecker creates a checker for the collection registry.
func NewRegistryChecker(registry *collection.Registry) *RegistryChecker {
	return &RegistryChecker{registry: registry}
}

func (c *RegistryChecker) Name() string {
	return "registry"
}

func (c *RegistryChecker) Check(_ context.Context) CheckResult {
	if c.registry == nil {
		return CheckResult{
			Status: StatusUnhealthy,
			Error:  "registry not initialized",
		}
	}
	return CheckResult{
		Status: StatusHealthy,
		Details: map[string]any{
			"collections": c.registry.Len(),
			"items":       c.registry.TotalItems(),
		},
	}
}

// FuncChecker adapts a plain function into a Checker, for wiring ad-hoc
// readiness conditions from main.
type FuncChecker struct {
	name string
	fn   func(ctx context.Context) CheckResult
}

// NewFuncChecker creates a named checker from fn.
func NewFuncChecker(name string, fn func(ctx context.Context) CheckResult) *FuncChecker {
	return &FuncChecker{name: name, fn: fn}
}

func (c *FuncChecker) Name() string {
	return c.name
}

func (c *FuncChecker) Check(ctx context.Context) CheckResult {
	return c.fn(ctx)
}
