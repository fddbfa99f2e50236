/*
 * Dieter - a modular procedural language with set-like type qualifiers
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *   http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package check

import (
	"sort"

	"github.com/catseye/Dieter/ast"
	"github.com/catseye/Dieter/types"
)

// DispatchChain is the specificity-ordered list of candidates applicable
// at one call site, most general first, recorded on the Elaboration for
// each call expression so an evaluator can walk it at runtime.
type DispatchChain struct {
	Candidates []*Candidate
}

// applicable pairs a freshened signature with the candidate it came
// from, plus the substitution built while probing it, for use after the
// candidate is confirmed applicable.
type applicable struct {
	candidate *Candidate
	signature *types.ProcSignature
	subst     *Substitution
}

// resolveCall filters candidates by provisional unification, enforces
// the shared-return-type rule, and orders survivors into a dispatch
// chain. argTypes are the already-checked types of the call's arguments.
func resolveCall(g *OrderingGraph, counter *types.IDCounter, name string, candidates []*Candidate, argTypes []types.Type, r ast.Range) (*DispatchChain, types.Type, error) {
	var applicableOnes []applicable
	var rejection *UnificationError
	matchingArity := 0

	for _, c := range candidates {
		if len(c.Signature.ParamTypes) != len(argTypes) {
			continue
		}
		matchingArity++
		fresh := types.Freshen(c.Signature, counter)
		subst := NewSubstitution()
		ok := true
		for i, paramType := range fresh.ParamTypes {
			if err := Unify(paramType, argTypes[i], subst); err != nil {
				rejection = err
				ok = false
				break
			}
		}
		if ok {
			applicableOnes = append(applicableOnes, applicable{candidate: c, signature: fresh, subst: subst})
		}
	}

	if len(applicableOnes) == 0 {
		// With only one arity-matching candidate, rejection isn't really a
		// dispatch failure: surface the specific unification error instead
		// of the generic dispatch-probe verdict.
		if matchingArity == 1 && rejection != nil {
			err := *rejection
			err.Range = r
			return nil, types.Type{}, &err
		}
		return nil, types.Type{}, &NoApplicableCandidateError{Range: r, Name: name}
	}

	returnType := applicableOnes[0].subst.Apply(applicableOnes[0].signature.ReturnType)
	for _, a := range applicableOnes[1:] {
		other := a.subst.Apply(a.signature.ReturnType)
		if !other.Equal(returnType) {
			return nil, types.Type{}, &AmbiguousDispatchError{Range: r, Name: name}
		}
	}

	ordered, err := orderBySpecificity(g, applicableOnes)
	if err != nil {
		return nil, types.Type{}, &AmbiguousDispatchError{Range: r, Name: name}
	}

	chain := &DispatchChain{}
	for _, a := range ordered {
		chain.Candidates = append(chain.Candidates, a.candidate)
	}
	return chain, returnType, nil
}

// orderBySpecificity sorts applicable candidates most-general-first,
// breaking ties by declaration order, and reports ambiguity if any pair
// is genuinely incomparable under CompareSignatures.
func orderBySpecificity(g *OrderingGraph, items []applicable) ([]applicable, error) {
	n := len(items)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if compareApplicable(g, items[i], items[j]) == Incomparable {
				return nil, &AmbiguousDispatchError{}
			}
		}
	}
	sort.SliceStable(items, func(i, j int) bool {
		return compareApplicable(g, items[i], items[j]) == Less
	})
	return items, nil
}

// compareApplicable compares two applicable candidates by the qualifiers
// written on their parameters, as declared -- not by subst.Apply, which
// would fold each occurrence's bound type back in and leave every
// candidate with the same fully-resolved qualifier set, destroying the
// specificity signal dispatch depends on.
func compareApplicable(g *OrderingGraph, a, b applicable) Ordering {
	return CompareSignatures(g, signatureQualifiers(a.signature), signatureQualifiers(b.signature))
}

// signatureQualifiers extracts a signature's parameter qualifier sets, in
// parameter order, for CompareSignatures.
func signatureQualifiers(sig *types.ProcSignature) []types.QualifierSet {
	qs := make([]types.QualifierSet, len(sig.ParamTypes))
	for i, p := range sig.ParamTypes {
		qs[i] = p.Qualifiers
	}
	return qs
}

// Elaboration records checker-computed facts about expressions without
// mutating the (conceptually immutable) AST, grounded on the teacher's
// sema.Elaboration.
type Elaboration struct {
	types  map[ast.Expression]types.Type
	chains map[ast.Expression]*DispatchChain
}

func NewElaboration() *Elaboration {
	return &Elaboration{
		types:  make(map[ast.Expression]types.Type),
		chains: make(map[ast.Expression]*DispatchChain),
	}
}

func (e *Elaboration) SetType(expr ast.Expression, t types.Type) {
	e.types[expr] = t
}

func (e *Elaboration) TypeOf(expr ast.Expression) (types.Type, bool) {
	t, ok := e.types[expr]
	return t, ok
}

func (e *Elaboration) SetDispatchChain(expr ast.Expression, chain *DispatchChain) {
	e.chains[expr] = chain
}

func (e *Elaboration) DispatchChainOf(expr ast.Expression) (*DispatchChain, bool) {
	c, ok := e.chains[expr]
	return c, ok
}
