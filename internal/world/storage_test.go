package world_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glavblock/glavblock/internal/data"
	"github.com/glavblock/glavblock/internal/world"
)

func TestDepositIntoSingleRoom(t *testing.T) {
	s := newState(t)
	room := s.InstallBuilt(data.T1, data.Party)

	left := s.Deposit(data.Concentrate, 1000)

	assert.Equal(t, data.RealUnits(0), left)
	assert.Equal(t, data.RealUnits(1000), s.TotalOf(data.Concentrate))
	assert.Equal(t, data.Area(2000), s.FreeSpace(room))
}

func TestDepositReturnsWhatDoesNotFit(t *testing.T) {
	s := newState(t)
	room := s.InstallBuilt(data.T1, data.Party)

	// 3000 area / 100 per piece = 30 whole units
	left := s.Deposit(data.ScrapT1, 45)

	assert.Equal(t, data.RealUnits(15), left)
	assert.Equal(t, data.RealUnits(30), s.TotalOf(data.ScrapT1))
	assert.Equal(t, data.Area(0), s.FreeSpace(room))
}

func TestDepositOnlyPlacesWholeUnits(t *testing.T) {
	s := newState(t)
	room := s.InstallBuilt(data.T1, data.Party)
	require.Equal(t, data.RealUnits(0), s.Deposit(data.Concentrate, 2950))

	// 50 free, polymer needs 50 per piece, scrap 100
	assert.Equal(t, data.RealUnits(2), s.Deposit(data.ScrapT1, 2))
	assert.Equal(t, data.RealUnits(1), s.Deposit(data.Polymer, 2))
	assert.Equal(t, data.Area(0), s.FreeSpace(room))
}

func TestDepositFillsFullestRoomFirst(t *testing.T) {
	s := newState(t)
	big := s.InstallBuilt(data.T2, data.Party)
	small := s.InstallBuilt(data.T1, data.Party)

	require.Equal(t, data.RealUnits(0), s.Deposit(data.Concentrate, 2500))
	assert.Equal(t, data.Area(15000), s.FreeSpace(big))
	assert.Equal(t, data.Area(500), s.FreeSpace(small))

	require.Equal(t, data.RealUnits(0), s.Deposit(data.Concentrate, 1000))
	assert.Equal(t, data.Area(0), s.FreeSpace(small))
	assert.Equal(t, data.Area(14500), s.FreeSpace(big))
	assert.Equal(t, data.RealUnits(3500), s.TotalOf(data.Concentrate))
}

func TestDepositIgnoresOtherRoomTypes(t *testing.T) {
	s := newState(t)
	s.InstallBuilt(data.T3, data.Living)
	s.InstallBuilt(data.T3, data.Industrial)

	assert.Equal(t, data.RealUnits(10), s.Deposit(data.BioRaw, 10))
	assert.Empty(t, s.Snapshot())
}

func TestWithdrawMoreThanHeld(t *testing.T) {
	s := newState(t)
	room := s.InstallBuilt(data.T1, data.Party)
	require.Equal(t, data.RealUnits(0), s.Deposit(data.ScrapT1, 3))

	short := s.Withdraw(data.ScrapT1, 5)

	assert.Equal(t, data.RealUnits(2), short)
	assert.Equal(t, data.RealUnits(0), s.TotalOf(data.ScrapT1))
	assert.Equal(t, data.Area(3000), s.FreeSpace(room))
	assert.Equal(t, 0, s.Containers.Len())
}

func TestWithdrawAcrossContainers(t *testing.T) {
	s := newState(t)
	s.InstallBuilt(data.T1, data.Party)
	s.InstallBuilt(data.T1, data.Party)
	require.Equal(t, data.RealUnits(0), s.Deposit(data.ScrapT1, 40))
	require.Equal(t, 2, s.Containers.Len())

	assert.Equal(t, data.RealUnits(0), s.Withdraw(data.ScrapT1, 35))
	assert.Equal(t, data.RealUnits(5), s.TotalOf(data.ScrapT1))
	assert.Equal(t, 1, s.Containers.Len())
}

func TestWithdrawNothing(t *testing.T) {
	s := newState(t)
	assert.Equal(t, data.RealUnits(0), s.Withdraw(data.Slime, 0))
	assert.Equal(t, data.RealUnits(4), s.Withdraw(data.Slime, 4))
}

func TestStockIsConserved(t *testing.T) {
	cases := []struct {
		name    string
		deposit data.RealUnits
		take    data.RealUnits
	}{
		{"partial", 20, 7},
		{"exact", 20, 20},
		{"overdraw", 20, 26},
		{"empty", 0, 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := newState(t)
			s.InstallBuilt(data.T2, data.Party)
			require.Equal(t, data.RealUnits(0), s.Deposit(data.Polymer, tc.deposit))

			before := s.TotalOf(data.Polymer)
			short := s.Withdraw(data.Polymer, tc.take)
			after := s.TotalOf(data.Polymer)

			assert.Equal(t, before-(tc.take-short), after)
			assert.GreaterOrEqual(t, after, data.RealUnits(0))
			assert.NoError(t, s.CheckCapacity())
		})
	}
}

func TestSnapshotIsStable(t *testing.T) {
	s := newState(t)
	s.InstallBuilt(data.T2, data.Party)
	s.Deposit(data.Concentrate, 1000)
	s.Deposit(data.ScrapT1, 50)
	s.Deposit(data.ScrapT2, 40)
	s.Deposit(data.Polymer, 30)

	first := s.Snapshot()
	assert.Equal(t, map[data.Resource]data.RealUnits{
		data.Concentrate: 1000,
		data.ScrapT1:     50,
		data.ScrapT2:     40,
		data.Polymer:     30,
	}, first)
	assert.Equal(t, first, s.Snapshot())
}

func TestWithdrawBunchIsAllOrNothing(t *testing.T) {
	s := newState(t)
	s.InstallBuilt(data.T1, data.Party)
	s.Deposit(data.ScrapT1, 10)
	s.Deposit(data.Polymer, 2)

	err := s.WithdrawBunch(map[data.Resource]data.RealUnits{
		data.ScrapT1: 5,
		data.Polymer: 3,
	})
	require.ErrorIs(t, err, world.ErrNotEnoughResources)
	assert.Equal(t, data.RealUnits(10), s.TotalOf(data.ScrapT1))
	assert.Equal(t, data.RealUnits(2), s.TotalOf(data.Polymer))

	require.NoError(t, s.WithdrawBunch(map[data.Resource]data.RealUnits{
		data.ScrapT1: 5,
		data.Polymer: 2,
	}))
	assert.Equal(t, data.RealUnits(5), s.TotalOf(data.ScrapT1))
	assert.Equal(t, data.RealUnits(0), s.TotalOf(data.Polymer))
}

func TestHasEnough(t *testing.T) {
	s := newState(t)
	s.InstallBuilt(data.T1, data.Party)
	s.Deposit(data.ComponentT1, 4)

	assert.True(t, s.HasEnough(map[data.Resource]data.RealUnits{data.ComponentT1: 4}))
	assert.False(t, s.HasEnough(map[data.Resource]data.RealUnits{data.ComponentT1: 5}))
	assert.True(t, s.HasEnough(nil))
}
