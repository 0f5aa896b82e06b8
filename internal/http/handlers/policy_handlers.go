package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vikartp/aakasmik-nidhi-sanstha-sub000/domain"
	"github.com/vikartp/aakasmik-nidhi-sanstha-sub000/internal/logging"
)

// PolicyHandlers exposes the active authorization policy
type PolicyHandlers struct {
	policy domain.PolicyService
	log    logging.Logger
}

// NewPolicyHandlers creates new policy handlers
func NewPolicyHandlers(policy domain.PolicyService, log logging.Logger) *PolicyHandlers {
	return &PolicyHandlers{policy: policy, log: log}
}

type policyRule struct {
	Role     string `json:"role"`
	Resource string `json:"resource"`
	Action   string `json:"action"`
}

// List returns every (role, resource, action) rule
func (h *PolicyHandlers) List(c *gin.Context) {
	raw, err := h.policy.GetPolicies()
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	rules := make([]policyRule, 0, len(raw))
	for _, p := range raw {
		if len(p) < 3 {
			continue
		}
		rules = append(rules, policyRule{Role: p[0], Resource: p[1], Action: p[2]})
	}
	c.JSON(http.StatusOK, rules)
}
