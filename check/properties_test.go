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
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/catseye/Dieter/ast"
	"github.com/catseye/Dieter/parser"
	"github.com/catseye/Dieter/types"
)

// checkSource parses and checks code, panicking on a syntax error since
// every source string a property below generates is syntactically valid
// by construction -- a panic here would mean the generator is broken,
// not that the property failed.
func checkSource(code string) error {
	program, errs := parser.ParseProgram(code)
	if len(errs) > 0 {
		panic(errs[0])
	}
	return NewChecker().Check(program)
}

var candidateQualifiers = []string{"beefy", "gnarly", "crunchy", "zesty", "mellow"}

func genQualifierSubset() gopter.Gen {
	return gen.SliceOf(gen.OneConstOf(
		candidateQualifiers[0], candidateQualifiers[1], candidateQualifiers[2],
		candidateQualifiers[3], candidateQualifiers[4],
	))
}

func buildSet(in *types.QualifierInterner, names []string) types.QualifierSet {
	s := types.NewQualifierSet(in)
	for _, n := range names {
		s = s.AddName(n)
	}
	return s
}

// TestPropertyQualifierSetAlgebra covers spec's "Qualifier-set algebra"
// invariant: a type's equality depends only on its qualifiers as a set,
// so duplicating or reordering the qualifier list is a no-op.
func TestPropertyQualifierSetAlgebra(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("duplicating a qualifier name does not change the set", prop.ForAll(
		func(names []string) bool {
			in := types.NewQualifierInterner()
			once := buildSet(in, names)
			var doubled []string
			for _, n := range names {
				doubled = append(doubled, n, n)
			}
			twice := buildSet(in, doubled)
			return once.Equal(twice)
		},
		genQualifierSubset(),
	))

	properties.Property("reordering a qualifier list does not change the set", prop.ForAll(
		func(names []string) bool {
			in := types.NewQualifierInterner()
			forward := buildSet(in, names)
			reversed := make([]string, len(names))
			for i, n := range names {
				reversed[len(names)-1-i] = n
			}
			backward := buildSet(in, reversed)
			return forward.Equal(backward)
		},
		genQualifierSubset(),
	))

	properties.TestingRun(t)
}

// TestPropertyDirectionalUnificationSoundness covers spec's "Directional
// unification" invariant: whenever unify(R, P, ...) succeeds, applying
// the resulting substitution makes the provider's qualifiers a superset
// of the receptor's.
func TestPropertyDirectionalUnificationSoundness(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("a successful unification leaves provider qualifiers a superset of receptor qualifiers", prop.ForAll(
		func(receptorNames, extraNames []string) bool {
			in := types.NewQualifierInterner()
			receptorQ := buildSet(in, receptorNames)
			providerQ := buildSet(in, append(append([]string{}, receptorNames...), extraNames...))

			receptor := types.Int(in).WithQualifiers(receptorQ)
			provider := types.Int(in).WithQualifiers(providerQ)

			subst := NewSubstitution()
			err := Unify(receptor, provider, subst)
			if err != nil {
				return false
			}

			effR := subst.Apply(receptor)
			effP := subst.Apply(provider)
			return effP.Qualifiers.IsSupersetOf(effR.Qualifiers)
		},
		genQualifierSubset(),
		genQualifierSubset(),
	))

	properties.TestingRun(t)
}

// TestPropertyUnificationIsAsymmetric covers spec's "Asymmetry" invariant
// with the literal example: unify(int, gnarly int) succeeds but
// unify(gnarly int, int) fails.
func TestPropertyUnificationIsAsymmetric(t *testing.T) {
	in := types.NewQualifierInterner()
	plainInt := types.Int(in)
	gnarlyInt := types.Int(in).WithQualifiers(types.NewQualifierSet(in).AddName("gnarly"))

	forward := NewSubstitution()
	if err := Unify(plainInt, gnarlyInt, forward); err != nil {
		t.Fatalf("unify(int, gnarly int) should succeed, got %v", err)
	}

	backward := NewSubstitution()
	if err := Unify(gnarlyInt, plainInt, backward); err == nil {
		t.Fatal("unify(gnarly int, int) should fail")
	}
}

// TestPropertyUnificationOfEqualQualifierSetsAlwaysSucceeds is a
// corollary of directional unification: receptor and provider carrying
// identical qualifier sets unify regardless of which arbitrary subset of
// the candidate qualifiers is chosen.
func TestPropertyUnificationOfEqualQualifierSetsAlwaysSucceeds(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("identical qualifier sets always unify", prop.ForAll(
		func(names []string) bool {
			in := types.NewQualifierInterner()
			q := buildSet(in, names)
			receptor := types.Int(in).WithQualifiers(q)
			provider := types.Int(in).WithQualifiers(q)

			subst := NewSubstitution()
			return Unify(receptor, provider, subst) == nil
		},
		genQualifierSubset(),
	))

	properties.TestingRun(t)
}

// TestPropertyBestowEncapsulation covers spec's "Bestow-encapsulation"
// invariant across a family of programs that vary only in whether the
// bestowing module's name matches the bestowed qualifier.
func TestPropertyBestowEncapsulation(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("bestow q inside module q always checks, bestow q inside a differently-named module never does", prop.ForAll(
		func(matches bool) bool {
			moduleName := "alpha"
			qualifier := "alpha"
			if !matches {
				qualifier = "beta"
			}
			src := "module " + moduleName + "\n" +
				"  procedure make(): " + qualifier + " int\n" +
				"  begin\n" +
				"    return bestow " + qualifier + " 1\n" +
				"  end\n" +
				"end\n"
			err := checkSource(src)
			if matches {
				return err == nil
			}
			return err != nil
		},
		gen.Bool(),
	))

	properties.TestingRun(t)
}

// TestPropertyDispatchLinearization covers spec's "Dispatch
// linearization" invariant: for an accepted call site, the resolved
// chain of applicable candidates is a total order -- every adjacent
// pair compares Less (or Equal via the subset rule), never
// Incomparable.
func TestPropertyDispatchLinearization(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("ordering beefy < gnarly linearizes any subset of {beefy, gnarly, crunchy}-qualified candidates sharing crunchy", prop.ForAll(
		func(withBeefy, withGnarly bool) bool {
			g := NewOrderingGraph()
			if err := g.AddEdge("beefy", "gnarly", ast.Range{}); err != nil {
				return false
			}

			in := types.NewQualifierInterner()
			var sigs []*types.ProcSignature
			base := []string{"crunchy"}
			if withBeefy {
				sigs = append(sigs, &types.ProcSignature{
					Name:       "grind",
					ParamTypes: []types.Type{types.NewTypeVariable(in, 0).WithQualifiers(buildSet(in, append(append([]string{}, base...), "beefy")))},
					ReturnType: types.Bool(in),
				})
			}
			if withGnarly {
				sigs = append(sigs, &types.ProcSignature{
					Name:       "grind",
					ParamTypes: []types.Type{types.NewTypeVariable(in, 0).WithQualifiers(buildSet(in, append(append([]string{}, base...), "gnarly")))},
					ReturnType: types.Bool(in),
				})
			}
			sigs = append(sigs, &types.ProcSignature{
				Name:       "grind",
				ParamTypes: []types.Type{types.NewTypeVariable(in, 0).WithQualifiers(buildSet(in, base))},
				ReturnType: types.Bool(in),
			})

			counter := types.NewIDCounter()
			argType := types.Int(in).WithQualifiers(buildSet(in, []string{"crunchy", "beefy", "gnarly"}))

			var items []applicable
			for _, sig := range sigs {
				fresh := types.Freshen(sig, counter)
				subst := NewSubstitution()
				if err := Unify(fresh.ParamTypes[0], argType, subst); err != nil {
					return false
				}
				items = append(items, applicable{signature: fresh, subst: subst})
			}

			ordered, err := orderBySpecificity(g, items)
			if err != nil {
				return false
			}
			for i := 0; i+1 < len(ordered); i++ {
				cmp := compareApplicable(g, ordered[i], ordered[i+1])
				if cmp != Less && cmp != Equal {
					return false
				}
			}
			return true
		},
		gen.Bool(),
		gen.Bool(),
	))

	properties.TestingRun(t)
}

// TestPropertyReturnTypeCoherence covers spec's "Return-type coherence"
// invariant: a procedure name's declared return types are either all
// identical (coherent, no error) or the checker reports an error once a
// divergent declaration is seen.
func TestPropertyReturnTypeCoherence(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("two forwards of the same name diverge in return type iff the types differ", prop.ForAll(
		func(divergent bool) bool {
			secondReturn := "int"
			if divergent {
				secondReturn = "bool"
			}
			src := "forward foo(int): int\n" +
				"forward foo(string): " + secondReturn + "\n"
			err := checkSource(src)
			if divergent {
				return err != nil
			}
			return err == nil
		},
		gen.Bool(),
	))

	properties.TestingRun(t)
}
