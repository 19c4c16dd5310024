/*
 * topology_test.go, part of chemfiles.
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package chemfiles

import (
	"fmt"
	"testing"
)

func chain(Te *testing.T, natoms int) *Topology {
	top := NewTopology()
	for i := 0; i < natoms; i++ {
		top.Append(NewAtom(fmt.Sprintf("A%d", i), "C"))
	}
	for i := 0; i < natoms-1; i++ {
		if err := top.AddBond(i, i+1); err != nil {
			Te.Fatal(err)
		}
	}
	return top
}

func TestResizeFailsWithoutMutating(Te *testing.T) {
	top := NewTopology()
	for i := 0; i < 3; i++ {
		top.Append(NewAtom("C", "C"))
	}
	if err := top.AddBond(0, 2); err != nil {
		Te.Fatal(err)
	}
	//the bond references atom 2, so any resize at or below that must fail
	for _, n := range []int{0, 1, 2} {
		err := top.Resize(n)
		if err == nil {
			Te.Errorf("Resize(%d) should have failed with a bond 0-2 present", n)
		}
		if !IsKind(err, ErrGeneric) {
			Te.Errorf("Resize(%d) returned a %v error, wanted an invariant error", n, err)
		}
		if top.Len() != 3 {
			Te.Errorf("failed Resize(%d) changed the atom count to %d", n, top.Len())
		}
		if bonds := top.Bonds(); len(bonds) != 1 || bonds[0] != NewBond(0, 2) {
			Te.Errorf("failed Resize(%d) changed the bond set to %v", n, bonds)
		}
	}
	if err := top.Resize(5); err != nil {
		Te.Error(err)
	}
	if top.Len() != 5 {
		Te.Errorf("Resize(5) left %d atoms", top.Len())
	}
	if top.Atom(4).Defined() {
		Te.Error("atoms added by Resize should be undefined placeholders")
	}
	if top.Atom(1).Defined() == false {
		Te.Error("Resize redefined a pre-existing atom")
	}
	if err := top.Resize(3); err != nil {
		Te.Error(err)
	}
	if top.Len() != 3 {
		Te.Errorf("Resize(3) left %d atoms", top.Len())
	}
}

func TestResizeRejectsNegativeLengths(Te *testing.T) {
	//a bond-free topology has no bond invariant to trip on, so the length
	//itself must be validated
	top := NewTopology()
	top.Append(NewAtom("C", "C"))
	err := top.Resize(-1)
	if err == nil || !IsKind(err, ErrGeneric) {
		Te.Errorf("Resize(-1) should fail with an invariant error, got %v", err)
	}
	if top.Len() != 1 {
		Te.Errorf("a failed Resize changed the atom count to %d", top.Len())
	}
	if err := top.Resize(0); err != nil {
		Te.Error(err)
	}
	if top.Len() != 0 {
		Te.Errorf("Resize(0) left %d atoms", top.Len())
	}
}

func TestRemoveDropsIncidentBonds(Te *testing.T) {
	top := chain(Te, 3) //bonds 0-1 and 1-2
	if err := top.Remove(1); err != nil {
		Te.Fatal(err)
	}
	if top.Len() != 2 {
		Te.Errorf("expected 2 atoms after Remove(1), got %d", top.Len())
	}
	if bonds := top.Bonds(); len(bonds) != 0 {
		Te.Errorf("both bonds were incident to atom 1, but %v remain", bonds)
	}
}

func TestRemoveRenumbersSurvivingBonds(Te *testing.T) {
	top := NewTopology()
	for i := 0; i < 4; i++ {
		top.Append(NewAtom("C", "C"))
	}
	top.AddBond(0, 1)
	top.AddBond(2, 3)
	if err := top.Remove(1); err != nil {
		Te.Fatal(err)
	}
	//the 2-3 bond survives, between what are now atoms 1 and 2
	if bonds := top.Bonds(); len(bonds) != 1 || bonds[0] != NewBond(1, 2) {
		Te.Errorf("expected the surviving bond renumbered to 1-2, got %v", bonds)
	}
	if !top.IsBond(2, 1) {
		Te.Error("IsBond should be order-insensitive")
	}
	if err := top.Remove(7); err == nil {
		Te.Error("Remove out of range should fail")
	}
}

func TestAnglesAndDihedralsFromChain(Te *testing.T) {
	top := chain(Te, 4) //0-1-2-3
	angles := top.Angles()
	if len(angles) != 2 {
		Te.Fatalf("expected 2 angles on a 4-atom chain, got %v", angles)
	}
	if angles[0] != NewAngle(0, 1, 2) || angles[1] != NewAngle(1, 2, 3) {
		Te.Errorf("wrong angles on a 4-atom chain: %v", angles)
	}
	dihedrals := top.Dihedrals()
	if len(dihedrals) != 1 || dihedrals[0] != NewDihedral(0, 1, 2, 3) {
		Te.Fatalf("expected the single dihedral 0-1-2-3, got %v", dihedrals)
	}
	if !top.IsAngle(0, 1, 2) || !top.IsAngle(2, 1, 0) {
		Te.Error("an angle and its reversal are the same angle")
	}
	if top.IsAngle(1, 0, 2) {
		Te.Error("1-0-2 is not an angle of the chain")
	}
	if !top.IsDihedral(0, 1, 2, 3) || !top.IsDihedral(3, 2, 1, 0) {
		Te.Error("a dihedral and its reversal are the same dihedral")
	}
	if top.IsDihedral(1, 0, 2, 3) {
		Te.Error("1-0-2-3 is not a dihedral of the chain")
	}
}

func TestDerivedSetsFollowMutations(Te *testing.T) {
	top := chain(Te, 4)
	if err := top.RemoveBond(1, 2); err != nil {
		Te.Fatal(err)
	}
	if angles := top.Angles(); len(angles) != 0 {
		Te.Errorf("no angles should survive cutting the chain in half, got %v", angles)
	}
	if dihedrals := top.Dihedrals(); len(dihedrals) != 0 {
		Te.Errorf("no dihedrals should survive cutting the chain in half, got %v", dihedrals)
	}
	top.AddBond(2, 1)
	if !top.IsDihedral(0, 1, 2, 3) {
		Te.Error("re-adding the middle bond should restore the dihedral")
	}
}

func TestStarHasAnglesButNoDihedrals(Te *testing.T) {
	top := NewTopology()
	for i := 0; i < 4; i++ {
		top.Append(NewAtom("C", "C"))
	}
	for _, i := range []int{0, 2, 3} {
		top.AddBond(1, i)
	}
	if angles := top.Angles(); len(angles) != 3 {
		Te.Errorf("a 3-arm star has 3 angles, got %v", angles)
	}
	if dihedrals := top.Dihedrals(); len(dihedrals) != 0 {
		Te.Errorf("a 3-arm star has no dihedral, got %v", dihedrals)
	}
}

func TestBondValidation(Te *testing.T) {
	top := chain(Te, 2)
	if err := top.AddBond(0, 0); err == nil {
		Te.Error("self-bonds should be rejected")
	}
	if err := top.AddBond(0, 5); err == nil {
		Te.Error("out of range bonds should be rejected")
	}
	//adding the same bond twice is not an error and does not duplicate it
	if err := top.AddBond(1, 0); err != nil {
		Te.Error(err)
	}
	if bonds := top.Bonds(); len(bonds) != 1 {
		Te.Errorf("expected a single 0-1 bond, got %v", bonds)
	}
}

func TestReserveKeepsLength(Te *testing.T) {
	top := chain(Te, 2)
	top.Reserve(100)
	if top.Len() != 2 {
		Te.Errorf("Reserve changed the length to %d", top.Len())
	}
	if !top.IsBond(0, 1) {
		Te.Error("Reserve lost the bonds")
	}
}
