package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
	"gorm.io/gorm"

	"swc_fantasy_api/internal/models"
)

func TestPlayerRepository_List(t *testing.T) {
	Convey("Given a store with five players", t, func() {
		db := newTestDB(t)
		repo := NewPlayerRepository(db)
		ctx := context.Background()

		seed := []models.Player{
			{PlayerID: 1, FirstName: "John", LastName: "Smith", Position: "QB", LastChangedDate: day(2024, time.April, 1)},
			{PlayerID: 2, FirstName: "Mike", LastName: "Jones", Position: "RB", LastChangedDate: day(2024, time.April, 2)},
			{PlayerID: 3, FirstName: "Alan", LastName: "Smith", Position: "WR", LastChangedDate: day(2024, time.April, 3)},
			{PlayerID: 4, FirstName: "John", LastName: "Brown", Position: "TE", LastChangedDate: day(2024, time.April, 4)},
			{PlayerID: 5, FirstName: "Dave", LastName: "Smith", Position: "K", LastChangedDate: day(2024, time.April, 5)},
		}
		So(db.Create(&seed).Error, ShouldBeNil)

		Convey("When listing without any filter", func() {
			players, err := repo.List(ctx, PlayerFilter{}, 0, 100)

			Convey("Then every player comes back in id order", func() {
				So(err, ShouldBeNil)
				So(len(players), ShouldEqual, 5)
				for i, p := range players {
					So(p.PlayerID, ShouldEqual, uint(i+1))
				}
			})
		})

		Convey("When filtering by last name", func() {
			players, err := repo.List(ctx, PlayerFilter{LastName: strPtr("Smith")}, 0, 100)

			Convey("Then only matching players come back, still in id order", func() {
				So(err, ShouldBeNil)
				So(len(players), ShouldEqual, 3)
				So(players[0].PlayerID, ShouldEqual, 1)
				So(players[1].PlayerID, ShouldEqual, 3)
				So(players[2].PlayerID, ShouldEqual, 5)
			})

			Convey("And the match is case sensitive", func() {
				players, err := repo.List(ctx, PlayerFilter{LastName: strPtr("smith")}, 0, 100)
				So(err, ShouldBeNil)
				So(players, ShouldBeEmpty)
			})
		})

		Convey("When combining first name and last name filters", func() {
			players, err := repo.List(ctx, PlayerFilter{
				FirstName: strPtr("John"),
				LastName:  strPtr("Smith"),
			}, 0, 100)

			Convey("Then both conditions apply together", func() {
				So(err, ShouldBeNil)
				So(len(players), ShouldEqual, 1)
				So(players[0].PlayerID, ShouldEqual, 1)
			})
		})

		Convey("When filtering by minimum last changed date", func() {
			players, err := repo.List(ctx, PlayerFilter{
				MinimumLastChanged: timePtr(day(2024, time.April, 3)),
			}, 0, 100)

			Convey("Then the boundary date itself is included and earlier days are not", func() {
				So(err, ShouldBeNil)
				So(len(players), ShouldEqual, 3)
				So(players[0].PlayerID, ShouldEqual, 3)
				So(players[1].PlayerID, ShouldEqual, 4)
				So(players[2].PlayerID, ShouldEqual, 5)
			})
		})

		Convey("When paging through the collection", func() {
			firstPage, err := repo.List(ctx, PlayerFilter{}, 0, 2)
			So(err, ShouldBeNil)
			secondPage, err := repo.List(ctx, PlayerFilter{}, 2, 2)
			So(err, ShouldBeNil)

			Convey("Then consecutive pages are disjoint and contiguous", func() {
				So(len(firstPage), ShouldEqual, 2)
				So(len(secondPage), ShouldEqual, 2)
				So(firstPage[0].PlayerID, ShouldEqual, 1)
				So(firstPage[1].PlayerID, ShouldEqual, 2)
				So(secondPage[0].PlayerID, ShouldEqual, 3)
				So(secondPage[1].PlayerID, ShouldEqual, 4)
			})

			Convey("And a window past the end is shortened", func() {
				lastPage, err := repo.List(ctx, PlayerFilter{}, 4, 2)
				So(err, ShouldBeNil)
				So(len(lastPage), ShouldEqual, 1)
				So(lastPage[0].PlayerID, ShouldEqual, 5)
			})

			Convey("And skipping everything yields an empty slice, not nil", func() {
				none, err := repo.List(ctx, PlayerFilter{}, 10, 2)
				So(err, ShouldBeNil)
				So(none, ShouldNotBeNil)
				So(none, ShouldBeEmpty)
			})

			Convey("And a zero limit yields no rows", func() {
				none, err := repo.List(ctx, PlayerFilter{}, 0, 0)
				So(err, ShouldBeNil)
				So(none, ShouldBeEmpty)
			})
		})

		Convey("When counting the collection", func() {
			total, err := repo.Count(ctx)

			Convey("Then the unfiltered cardinality comes back", func() {
				So(err, ShouldBeNil)
				So(total, ShouldEqual, 5)
			})
		})
	})
}

func TestPlayerRepository_FindByID(t *testing.T) {
	Convey("Given a store with one player", t, func() {
		db := newTestDB(t)
		repo := NewPlayerRepository(db)
		ctx := context.Background()

		So(db.Create(&models.Player{
			PlayerID:        7,
			FirstName:       "Tom",
			LastName:        "Brady",
			Position:        "QB",
			LastChangedDate: day(2024, time.April, 1),
		}).Error, ShouldBeNil)

		Convey("When looking up an existing id", func() {
			player, err := repo.FindByID(ctx, 7)

			Convey("Then the matching player comes back", func() {
				So(err, ShouldBeNil)
				So(player, ShouldNotBeNil)
				So(player.PlayerID, ShouldEqual, 7)
				So(player.LastName, ShouldEqual, "Brady")
			})
		})

		Convey("When looking up a nonexistent id", func() {
			player, err := repo.FindByID(ctx, 999)

			Convey("Then the record-not-found error surfaces", func() {
				So(player, ShouldBeNil)
				So(errors.Is(err, gorm.ErrRecordNotFound), ShouldBeTrue)
			})
		})
	})
}
