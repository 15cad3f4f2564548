package main

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/assetstore/assetstore"
	"github.com/arthur-debert/assetstore/types"
)

// Script is a list of store operations applied in order
type Script struct {
	Steps []Step `yaml:"steps"`
}

// Step is one operation of a script. Op selects the operation; the other
// fields are read only by the operations that need them.
type Step struct {
	Op          string `yaml:"op"`
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Category    string `yaml:"category"`
	Asset       string `yaml:"asset"`
	Parent      string `yaml:"parent"`
	From        string `yaml:"from"`
	To          string `yaml:"to"`
	Weight      int    `yaml:"weight"`
	Description string `yaml:"description"`
	Value       int    `yaml:"value"`
	Maintenance int    `yaml:"maintenance"`
	Tax         int    `yaml:"tax"`
	Rented      *bool  `yaml:"rented"`
	Renter      string `yaml:"renter"`
	Price       int    `yaml:"price"`
	Status      string `yaml:"status"`
	Priority    int    `yaml:"priority"`
	Estimate    int    `yaml:"estimated_value"`
	Client      string `yaml:"client"`
	Date        string `yaml:"date"`
	Type        string `yaml:"type"`
	Query       string `yaml:"query"`
}

// errNothingToDo declines operations on an empty queue or history
var errNothingToDo = errors.New("nothing to do")

type operation func(*assetstore.Store, Step) (string, error)

var operations = map[string]operation{
	"add_category": func(s *assetstore.Store, st Step) (string, error) {
		c, err := s.AddCategory(st.Name)
		return c.Name, err
	},
	"delete_category": func(s *assetstore.Store, st Step) (string, error) {
		n, err := s.DeleteCategory(st.Name)
		return fmt.Sprintf("%s, %d assets removed", st.Name, n), err
	},
	"add_asset": func(s *assetstore.Store, st Step) (string, error) {
		a, err := s.AddAsset(st.Name, st.Category)
		return fmt.Sprintf("%s %s", a.ID, a.Name), err
	},
	"delete_asset": func(s *assetstore.Store, st Step) (string, error) {
		return st.ID, s.DeleteAsset(st.ID)
	},
	"view_asset": func(s *assetstore.Store, st Step) (string, error) {
		a, v, err := s.ViewAsset(st.ID)
		return fmt.Sprintf("%s %s value %d", a.ID, a.Name, v.CurrentValue), err
	},
	"set_value": func(s *assetstore.Store, st Step) (string, error) {
		v, err := s.UpsertAssetValue(st.Asset, st.Value, st.Maintenance, st.Tax)
		return fmt.Sprintf("%s value %d", v.AssetID, v.CurrentValue), err
	},
	"add_connection": func(s *assetstore.Store, st Step) (string, error) {
		c, err := s.AddConnection(st.From, st.To, st.Weight, st.Description)
		return fmt.Sprintf("%s <-> %s weight %d", c.FromAssetID, c.ToAssetID, c.Weight), err
	},
	"delete_connection": func(s *assetstore.Store, st Step) (string, error) {
		return fmt.Sprintf("%s <-> %s", st.From, st.To), s.DeleteConnection(st.From, st.To)
	},
	"add_sub_asset": func(s *assetstore.Store, st Step) (string, error) {
		sub, err := s.AddSubAsset(types.SubAssetInput{
			ParentAssetID:    st.Asset,
			ParentSubAssetID: st.Parent,
			Name:             st.Name,
			Description:      st.Description,
		})
		return fmt.Sprintf("%s %s", sub.ID, sub.Name), err
	},
	"delete_sub_asset": func(s *assetstore.Store, st Step) (string, error) {
		n, err := s.DeleteSubAsset(st.ID)
		return fmt.Sprintf("%s, %d sub-assets removed", st.ID, n), err
	},
	"rent_sub_asset": func(s *assetstore.Store, st Step) (string, error) {
		rented := true
		if st.Rented != nil {
			rented = *st.Rented
		}
		return st.ID, s.UpdateSubAssetRental(st.ID, rented, st.Renter, st.Price)
	},
	"add_tender": func(s *assetstore.Store, st Step) (string, error) {
		t, err := s.AddTender(types.TenderInput{
			Name:           st.Name,
			Category:       st.Category,
			Description:    st.Description,
			TenderDate:     st.Date,
			EstimatedValue: st.Estimate,
			ClientName:     st.Client,
			Priority:       st.Priority,
		})
		return fmt.Sprintf("%s %s", t.ID, t.Name), err
	},
	"update_tender_status": func(s *assetstore.Store, st Step) (string, error) {
		return fmt.Sprintf("%s %s", st.ID, st.Status), s.UpdateTenderStatus(st.ID, st.Status)
	},
	"delete_tender": func(s *assetstore.Store, st Step) (string, error) {
		return st.ID, s.DeleteTender(st.ID)
	},
	"process_tender": func(s *assetstore.Store, _ Step) (string, error) {
		t, ok := s.ProcessNextTender()
		if !ok {
			return "tender queue is empty", errNothingToDo
		}
		return fmt.Sprintf("%s %s", t.ID, t.Name), nil
	},
	"record_access": func(s *assetstore.Store, st Step) (string, error) {
		kind := st.Type
		if kind == "" {
			kind = types.HistoryAsset
		}
		name := st.Name
		if name == "" {
			name = s.AssetName(st.ID)
		}
		if !s.RecordAccess(st.ID, name, kind) {
			return st.ID + " already on top", errNothingToDo
		}
		return st.ID, nil
	},
	"pop_history": func(s *assetstore.Store, _ Step) (string, error) {
		if !s.PopHistory() {
			return "history is empty", errNothingToDo
		}
		return "latest entry removed", nil
	},
	"clear_history": func(s *assetstore.Store, _ Step) (string, error) {
		return fmt.Sprintf("%d entries removed", s.ClearHistory()), nil
	},
	"search": func(s *assetstore.Store, st Step) (string, error) {
		var found []string
		for _, a := range s.SearchAssets(st.Query) {
			found = append(found, a.ID)
		}
		return fmt.Sprintf("%q: [%s]", st.Query, strings.Join(found, " ")), nil
	},
}

// operationNames lists the supported operations, sorted
func operationNames() []string {
	names := make([]string, 0, len(operations))
	for name := range operations {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// parseScript decodes a YAML script, rejecting unknown fields and operations
func parseScript(data []byte) (*Script, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var script Script
	if err := dec.Decode(&script); err != nil {
		return nil, fmt.Errorf("failed to parse script: %w", err)
	}
	for i, step := range script.Steps {
		if _, ok := operations[step.Op]; !ok {
			return nil, NewValidationError(fmt.Sprintf("parse step %d", i+1), "op", step.Op,
				"Supported operations: "+strings.Join(operationNames(), ", "))
		}
	}
	return &script, nil
}

// StepResult records the outcome of one applied step
type StepResult struct {
	Index   int
	Op      string
	Applied bool
	Message string
	Err     error
}

// runner applies script steps to one store
type runner struct {
	store  *assetstore.Store
	logger *slog.Logger
	strict bool
}

// run applies every step in order. A declined step is recorded and the run
// continues, unless strict is set, in which case the run stops with an error.
func (r *runner) run(steps []Step) ([]StepResult, error) {
	results := make([]StepResult, 0, len(steps))
	for i, step := range steps {
		msg, err := operations[step.Op](r.store, step)
		res := StepResult{Index: i + 1, Op: step.Op, Applied: err == nil, Message: msg, Err: err}
		results = append(results, res)

		if err != nil {
			r.logger.Info("step declined", "step", res.Index, "op", step.Op, "error", err)
			if r.strict {
				return results, NewStoreError(fmt.Sprintf("apply step %d (%s)", res.Index, step.Op), err,
					CommonSuggestions.DropStrict)
			}
			continue
		}
		r.logger.Debug("step applied", "step", res.Index, "op", step.Op)
	}
	return results, nil
}

// String renders a result as one report line
func (res StepResult) String() string {
	if res.Applied {
		return fmt.Sprintf("%3d ok       %-20s %s", res.Index, res.Op, res.Message)
	}
	return fmt.Sprintf("%3d declined %-20s %v", res.Index, res.Op, res.Err)
}
