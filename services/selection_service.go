package services

import (
	"fmt"

	"github.com/huntdavid175/plateraa-storefront/models"
)

type SelectionService struct{}

func NewSelectionService() *SelectionService {
	return &SelectionService{}
}

// Toggle applies one selection event to a group's current option ids:
// an already-selected option is removed, an exclusive group (maxSelect 1)
// swaps to the requested option, a multi-select appends while under capacity
// and silently ignores the request at capacity.
func (s *SelectionService) Toggle(group *models.ModificationGroup, current []string, optionID string) []string {
	for i, id := range current {
		if id == optionID {
			next := make([]string, 0, len(current)-1)
			next = append(next, current[:i]...)
			next = append(next, current[i+1:]...)
			return next
		}
	}

	if group.MaxSelect == 1 {
		return []string{optionID}
	}
	if len(current) < group.MaxSelect {
		return append(append([]string{}, current...), optionID)
	}
	return current
}

// GroupValid checks the lower cardinality bound. The upper bound is enforced
// when options are toggled, so only minSelect matters here. A required group
// with no options can never become valid.
func (s *SelectionService) GroupValid(group *models.ModificationGroup, selected []string) bool {
	if !group.Required {
		return true
	}
	return len(selected) >= group.MinSelect
}

// ItemValid reports whether every modification group of the item is
// satisfied by the given selections. There are no cross-group constraints.
func (s *SelectionService) ItemValid(item *models.MenuItem, selections map[string][]string) bool {
	for i := range item.ModificationGroups {
		group := &item.ModificationGroups[i]
		if !s.GroupValid(group, selections[group.ID]) {
			return false
		}
	}
	return true
}

// GroupPrice sums the incremental price of the selected options in a group.
func (s *SelectionService) GroupPrice(group *models.ModificationGroup, selected []string) float64 {
	sum := 0.0
	for _, id := range selected {
		if opt := group.FindOption(id); opt != nil {
			sum += opt.Price
		}
	}
	return sum
}

// Resolve turns raw per-group option ids into SelectedModification copies.
// The requested ids are replayed through Toggle so exclusive and capacity
// semantics hold even for a client that sends more than the group allows,
// then every group is checked against its lower bound. Option name and price
// are copied so the cart stays displayable if the catalog changes later.
func (s *SelectionService) Resolve(item *models.MenuItem, selections map[string][]string) ([]models.SelectedModification, error) {
	for groupID := range selections {
		if item.FindGroup(groupID) == nil {
			return nil, fmt.Errorf("unknown modification group %q", groupID)
		}
	}

	mods := []models.SelectedModification{}
	for i := range item.ModificationGroups {
		group := &item.ModificationGroups[i]

		selected := []string{}
		for _, optionID := range selections[group.ID] {
			if group.FindOption(optionID) == nil {
				return nil, fmt.Errorf("unknown option %q in group %q", optionID, group.ID)
			}
			selected = s.Toggle(group, selected, optionID)
		}

		if !s.GroupValid(group, selected) {
			return nil, fmt.Errorf("selection for %q does not meet the minimum of %d", group.Name, group.MinSelect)
		}

		for _, opt := range group.Options {
			for _, id := range selected {
				if id == opt.ID {
					mods = append(mods, models.SelectedModification{
						GroupID:  group.ID,
						OptionID: opt.ID,
						Name:     opt.Name,
						Price:    opt.Price,
					})
				}
			}
		}
	}
	return mods, nil
}
