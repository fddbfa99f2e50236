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

import "github.com/catseye/Dieter/types"

// Unify is the directional unification engine at the center of the
// checker. receptor is the declared/expected type; provider is the
// supplied one. Unify is not symmetric: callers must place the two
// arguments correctly. On success subst is extended in place with any
// new variable bindings; on failure subst is left exactly as it would
// be after the bindings made before the failing step (matching the
// original checker's per-declaration short-circuit, not full undo).
func Unify(receptor, provider types.Type, subst *Substitution) *UnificationError {
	effR := subst.Apply(receptor)
	effP := subst.Apply(provider)

	switch {
	case effR.IsVar() && effP.IsVar():
		subst.Bind(effP, effR)
		return nil

	case effR.IsVar():
		if !effP.Qualifiers.IsSupersetOf(effR.Qualifiers) {
			return &UnificationError{Kind: QualifierSetViolation, Receptor: receptor, Provider: provider}
		}
		subst.Bind(effR, types.Type{
			Qualifiers: effP.Qualifiers.Difference(effR.Qualifiers),
			Base:       effP.Base,
		})
		return nil

	case effP.IsVar():
		if !effR.Qualifiers.IsSupersetOf(effP.Qualifiers) {
			return &UnificationError{Kind: QualifierSetViolation, Receptor: receptor, Provider: provider}
		}
		subst.Bind(effP, effR)
		return nil

	default:
		if !effP.Qualifiers.IsSupersetOf(effR.Qualifiers) {
			if receptor.IsVar() {
				if ok, uerr := tryRebind(receptor, effP, subst); ok {
					return uerr
				}
			}
			return &UnificationError{Kind: QualifierSetViolation, Receptor: receptor, Provider: provider}
		}
		return unifyStructural(effR, effP, receptor, provider, subst)
	}
}

// tryRebind implements the distinctive re-binding rule: receptor is a
// direct reference to a variable that already has a binding (Q1, B1) in
// subst; unification at this occurrence would naturally produce a
// binding (Q2, B1) with Q2 a strict subset of Q1. Rather than failing
// the cardinal rule against the stale (Q1, B1), replace the binding with
// the less-qualified (Q2, B1). ok is false when receptor has no existing
// binding, or when the occurrence is not such a loosening, so the caller
// falls through to the ordinary qualifier-set failure.
func tryRebind(receptor types.Type, effP types.Type, subst *Substitution) (ok bool, uerr *UnificationError) {
	oldBinding, hasBinding := subst.bindings[receptor.Base.VarID]
	if !hasBinding {
		return false, nil
	}
	oldResolved := subst.Apply(oldBinding)
	newCandidate := types.Type{
		Qualifiers: effP.Qualifiers.Difference(receptor.Qualifiers),
		Base:       effP.Base,
	}

	if newCandidate.Base.Kind == oldResolved.Base.Kind {
		if newCandidate.Qualifiers.IsProperSubsetOf(oldResolved.Qualifiers) && effP.Qualifiers.IsSupersetOf(receptor.Qualifiers) {
			subst.bindings[receptor.Base.VarID] = newCandidate
			return true, nil
		}
		// Not a loosening of the existing binding: the provider lacks
		// qualifiers this occurrence demands, so the ordinary failure applies.
		return false, nil
	}

	// Disagreement on base type: fall back to ordinary unification
	// between the two candidate bindings to see if they are compatible.
	if err := Unify(oldResolved, newCandidate, subst); err != nil {
		return true, err
	}
	return true, nil
}

func unifyStructural(effR, effP, rawReceptor, rawProvider types.Type, subst *Substitution) *UnificationError {
	if effR.Base.Kind != effP.Base.Kind {
		return &UnificationError{Kind: StructuralMismatch, Receptor: rawReceptor, Provider: rawProvider}
	}
	if effR.Base.Kind != types.BaseTypeMap {
		return nil
	}
	if effR.Base.KeyType != nil {
		if effP.Base.KeyType == nil {
			return &UnificationError{Kind: StructuralMismatch, Receptor: rawReceptor, Provider: rawProvider}
		}
		if err := Unify(*effR.Base.KeyType, *effP.Base.KeyType, subst); err != nil {
			return err
		}
	}
	return Unify(*effR.Base.ValueType, *effP.Base.ValueType, subst)
}
