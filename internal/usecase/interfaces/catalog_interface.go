package interfaces

import "copydesk/internal/domain/entities"

// ICatalog exposes the externally configured business data: price rules,
// volume tiers, workflow step templates and lifecycle policy per service
// type. The engines accept these as input; none of the figures live in code.
type ICatalog interface {
	Rule(serviceType string) (entities.PriceRule, bool)
	VolumeTiers() []entities.VolumeTier
	StepTemplates(serviceType string) []entities.StepTemplate
	Policy(serviceType string) entities.ServicePolicy

	// AutoCompleteOrders picks between forcing and merely offering the
	// automatic order completion once every step is completed.
	AutoCompleteOrders() bool
}
