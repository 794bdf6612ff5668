package catalog

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"copydesk/internal/domain/entities"
	"copydesk/internal/usecase/interfaces"

	"github.com/go-playground/validator/v10"
)

// File is the on-disk catalog format: every business figure the pricing and
// workflow engines consume. Nothing in here is hard-coded in the engines.
type File struct {
	Services       []ServiceEntry        `json:"services"                 validate:"required,min=1,dive"`
	VolumeTiers    []entities.VolumeTier `json:"volume_tiers,omitempty"   validate:"dive"`
	AutoComplete   bool                  `json:"auto_complete_orders"`
	DefaultTaxRate float64               `json:"default_tax_rate_percent" validate:"min=0"`
}

// ServiceEntry bundles the rule, workflow template and lifecycle policy of one
// service type.
type ServiceEntry struct {
	Rule   entities.PriceRule      `json:"rule"   validate:"required"`
	Steps  []entities.StepTemplate `json:"steps"  validate:"dive"`
	Policy entities.ServicePolicy  `json:"policy"`
}

// Catalog is the in-memory, validated view of a catalog file. Read-only after
// load, safe for concurrent use.
type Catalog struct {
	rules        map[string]entities.PriceRule
	steps        map[string][]entities.StepTemplate
	policies     map[string]entities.ServicePolicy
	volumeTiers  []entities.VolumeTier
	autoComplete bool
}

var _ interfaces.ICatalog = (*Catalog)(nil)

// LoadFromEnv reads the catalog at CATALOG_PATH, or falls back to the built-in
// default catalog when the variable is unset.
func LoadFromEnv() (*Catalog, error) {
	path := os.Getenv("CATALOG_PATH")
	if path == "" {
		log.Printf("[catalog][infrastructure] CATALOG_PATH unset, using built-in catalog")
		return Default(), nil
	}
	log.Printf("[catalog][infrastructure] loading catalog path=%s", path)
	return Load(path)
}

// Load reads, parses and validates a catalog file.
func Load(path string) (*Catalog, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	var f File
	if err := json.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	return New(f)
}

// New validates a catalog file and builds the lookup view.
func New(f File) (*Catalog, error) {
	if err := validator.New().Struct(f); err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}

	c := &Catalog{
		rules:        map[string]entities.PriceRule{},
		steps:        map[string][]entities.StepTemplate{},
		policies:     map[string]entities.ServicePolicy{},
		volumeTiers:  f.VolumeTiers,
		autoComplete: f.AutoComplete,
	}
	for _, s := range f.Services {
		st := s.Rule.ServiceType
		if _, dup := c.rules[st]; dup {
			return nil, fmt.Errorf("invalid catalog: duplicate service type %q", st)
		}
		if s.Rule.TaxRatePercent == nil {
			rate := f.DefaultTaxRate
			s.Rule.TaxRatePercent = &rate
		}
		c.rules[st] = s.Rule
		c.steps[st] = s.Steps
		c.policies[st] = s.Policy
	}
	return c, nil
}

func (c *Catalog) Rule(serviceType string) (entities.PriceRule, bool) {
	r, ok := c.rules[serviceType]
	return r, ok
}

func (c *Catalog) VolumeTiers() []entities.VolumeTier {
	return c.volumeTiers
}

func (c *Catalog) StepTemplates(serviceType string) []entities.StepTemplate {
	return c.steps[serviceType]
}

func (c *Catalog) Policy(serviceType string) entities.ServicePolicy {
	return c.policies[serviceType]
}

func (c *Catalog) AutoCompleteOrders() bool {
	return c.autoComplete
}

// Default returns the built-in catalog used when no CATALOG_PATH is set.
// Figures here are development defaults, not production prices.
func Default() *Catalog {
	c, err := New(File{
		AutoComplete: false,
		Services: []ServiceEntry{
			{
				Rule: entities.PriceRule{
					ID:                "rule-blog-post",
					ServiceType:       "blog_post",
					BasePriceCents:    800,
					MinUnits:          500,
					PricePerUnitCents: 12,
					Modifiers: map[string]float64{
						"urgency":    1.5,
						"complexity": 1.3,
					},
					AddOnsCents: map[string]int64{
						"seo_review":  500,
						"stock_image": 300,
					},
					DiscountCodes: map[string]float64{
						"WELCOME10": 10,
					},
				},
				Steps: []entities.StepTemplate{
					{Name: "research", EstimatedMinutes: 60},
					{Name: "draft", EstimatedMinutes: 120},
					{Name: "edit", EstimatedMinutes: 60},
					{Name: "proofread", EstimatedMinutes: 30},
					{Name: "delivery", EstimatedMinutes: 15},
				},
				Policy: entities.ServicePolicy{RevisionLimit: 2},
			},
			{
				Rule: entities.PriceRule{
					ID:                "rule-whitepaper",
					ServiceType:       "whitepaper",
					BasePriceCents:    15000,
					MinUnits:          2000,
					PricePerUnitCents: 8,
					Modifiers: map[string]float64{
						"urgency":   1.5,
						"technical": 1.4,
					},
					AddOnsCents: map[string]int64{
						"design_layout": 8000,
					},
					Regional: true,
				},
				Steps: []entities.StepTemplate{
					{Name: "research", EstimatedMinutes: 480},
					{Name: "outline", EstimatedMinutes: 120},
					{Name: "draft", EstimatedMinutes: 960},
					{Name: "edit", EstimatedMinutes: 240},
					{Name: "delivery", EstimatedMinutes: 30},
				},
				Policy: entities.ServicePolicy{RevisionLimit: 3},
			},
			{
				Rule: entities.PriceRule{
					ID:                "rule-social-pack",
					ServiceType:       "social_pack",
					BasePriceCents:    2500,
					MinUnits:          0,
					PricePerUnitCents: 0,
				},
				Steps: []entities.StepTemplate{
					{Name: "draft", EstimatedMinutes: 90},
					{Name: "review", EstimatedMinutes: 30},
				},
				Policy: entities.ServicePolicy{NoPaymentRequired: true, RevisionLimit: 1},
			},
		},
		VolumeTiers: []entities.VolumeTier{
			{ThresholdCents: 5000, Percent: 5},
			{ThresholdCents: 20000, Percent: 10},
		},
	})
	if err != nil {
		// The built-in catalog is a compile-time constant in spirit; failing
		// validation is a programming error.
		panic(err)
	}
	return c
}
