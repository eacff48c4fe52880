package services

import (
	"time"

	"github.com/yukikurage/contest-tracker/internal/models"
)

func strPtr(s string) *string { return &s }

func timePtr(t time.Time) *time.Time { return &t }

func (suite *ServiceTestSuite) TestCreateContest_StampsCreatorAndTimestamps() {
	user := suite.createUser("creator@example.com")

	view := suite.createContest(user.ID, "  Round 1  ", base.Add(time.Hour), base.Add(27*time.Hour))

	suite.Equal("Round 1", view.Contest.Title)
	suite.Equal(user.ID, view.Contest.CreatorID)
	suite.Equal(user.ID, view.Contest.Creator.ID)
	suite.True(view.Contest.CreatedAt.Equal(base))
	suite.True(view.Contest.UpdatedAt.Equal(base))
	suite.Equal(models.ContestStatusUpcoming, view.Status)
	suite.Equal("1 day 2 hours", view.Duration)
	suite.True(view.CanEdit)
	suite.Nil(view.Contest.Duration)
}

func (suite *ServiceTestSuite) TestCreateContest_KeepsSuppliedDuration() {
	user := suite.createUser("creator@example.com")
	input := suite.validInput("Marathon", base.Add(time.Hour), base.Add(49*time.Hour))
	input.Duration = strPtr("two days")

	view, err := suite.contests.Create(suite.ctx(), input, user.ID)
	suite.Require().NoError(err)
	suite.Equal("two days", view.Duration)
}

func (suite *ServiceTestSuite) TestCreateContest_RequiresIdentity() {
	_, err := suite.contests.Create(suite.ctx(), suite.validInput("X", base.Add(time.Hour), base.Add(2*time.Hour)), 0)
	suite.ErrorIs(err, ErrUnauthorized)
	suite.Zero(suite.count(&models.Contest{}))
}

func (suite *ServiceTestSuite) TestCreateContest_Validation() {
	user := suite.createUser("creator@example.com")

	tests := []struct {
		name   string
		mutate func(in *CreateContestInput)
	}{
		{"missing title", func(in *CreateContestInput) { in.Title = "  " }},
		{"missing platform", func(in *CreateContestInput) { in.Platform = "" }},
		{"missing category", func(in *CreateContestInput) { in.Category = "" }},
		{"missing start", func(in *CreateContestInput) { in.StartDate = time.Time{} }},
		{"missing end", func(in *CreateContestInput) { in.EndDate = time.Time{} }},
		{"end before start", func(in *CreateContestInput) { in.EndDate = in.StartDate.Add(-time.Hour) }},
		{"end equals start", func(in *CreateContestInput) { in.EndDate = in.StartDate }},
		{"bad website", func(in *CreateContestInput) { in.Website = strPtr("ftp://contest.example") }},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			input := suite.validInput("Valid", base.Add(time.Hour), base.Add(2*time.Hour))
			tt.mutate(&input)

			_, err := suite.contests.Create(suite.ctx(), input, user.ID)
			suite.ErrorIs(err, ErrInvalidInput)
		})
	}

	suite.Zero(suite.count(&models.Contest{}))
}

func (suite *ServiceTestSuite) TestUpdateContest_MergesProvidedFields() {
	user := suite.createUser("creator@example.com")
	created := suite.createContest(user.ID, "Original", base.Add(time.Hour), base.Add(2*time.Hour))

	suite.clock.Advance(time.Minute)
	updated, err := suite.contests.Update(suite.ctx(), created.Contest.ID, UpdateContestInput{
		Title:   strPtr("Renamed"),
		Website: strPtr("https://contest.example"),
		EndDate: timePtr(base.Add(5 * time.Hour)),
	}, user.ID)
	suite.Require().NoError(err)

	suite.Equal("Renamed", updated.Contest.Title)
	suite.Equal("Codeforces", updated.Contest.Platform)
	suite.Equal("Rated round", updated.Contest.Description)
	suite.Require().NotNil(updated.Contest.Website)
	suite.Equal("https://contest.example", *updated.Contest.Website)
	suite.True(updated.Contest.CreatedAt.Equal(base))
	suite.True(updated.Contest.UpdatedAt.Equal(base.Add(time.Minute)))
	suite.Equal("4 hours", updated.Duration)

	cleared, err := suite.contests.Update(suite.ctx(), created.Contest.ID, UpdateContestInput{Website: strPtr("")}, user.ID)
	suite.Require().NoError(err)
	suite.Nil(cleared.Contest.Website)
}

func (suite *ServiceTestSuite) TestUpdateContest_Gates() {
	owner := suite.createUser("owner@example.com")
	other := suite.createUser("other@example.com")
	created := suite.createContest(owner.ID, "Original", base.Add(time.Hour), base.Add(2*time.Hour))

	_, err := suite.contests.Update(suite.ctx(), created.Contest.ID, UpdateContestInput{Title: strPtr("x")}, 0)
	suite.ErrorIs(err, ErrUnauthorized)

	_, err = suite.contests.Update(suite.ctx(), 9999, UpdateContestInput{Title: strPtr("x")}, owner.ID)
	suite.ErrorIs(err, ErrNotFound)

	_, err = suite.contests.Update(suite.ctx(), created.Contest.ID, UpdateContestInput{Title: strPtr("x")}, other.ID)
	suite.ErrorIs(err, ErrForbidden)

	_, err = suite.contests.Update(suite.ctx(), created.Contest.ID, UpdateContestInput{StartDate: timePtr(base.Add(3 * time.Hour))}, owner.ID)
	suite.ErrorIs(err, ErrInvalidInput)

	reloaded, err := suite.contests.GetByID(suite.ctx(), created.Contest.ID, 0)
	suite.Require().NoError(err)
	suite.Equal("Original", reloaded.Contest.Title)
	suite.True(reloaded.Contest.StartDate.Equal(base.Add(time.Hour)))
}

func (suite *ServiceTestSuite) TestDeleteContest_CascadesToBookmarksAndSolutions() {
	owner := suite.createUser("owner@example.com")
	fan := suite.createUser("fan@example.com")
	created := suite.createContest(owner.ID, "Doomed", base.Add(-time.Hour), base.Add(time.Hour))

	_, err := suite.bookmarks.Toggle(suite.ctx(), created.Contest.ID, fan.ID)
	suite.Require().NoError(err)
	_, err = suite.solutions.Save(suite.ctx(), created.Contest.ID, SaveSolutionInput{Link: "https://fan.example/s"}, fan.ID)
	suite.Require().NoError(err)

	suite.Require().NoError(suite.contests.Delete(suite.ctx(), created.Contest.ID, owner.ID))

	suite.Zero(suite.count(&models.Contest{}))
	suite.Zero(suite.count(&models.Bookmark{}))
	suite.Zero(suite.count(&models.Solution{}))

	view, err := suite.contests.GetByID(suite.ctx(), created.Contest.ID, owner.ID)
	suite.NoError(err)
	suite.Nil(view)
}

func (suite *ServiceTestSuite) TestDeleteContest_Gates() {
	owner := suite.createUser("owner@example.com")
	other := suite.createUser("other@example.com")
	created := suite.createContest(owner.ID, "Mine", base.Add(time.Hour), base.Add(2*time.Hour))

	suite.ErrorIs(suite.contests.Delete(suite.ctx(), created.Contest.ID, 0), ErrUnauthorized)
	suite.ErrorIs(suite.contests.Delete(suite.ctx(), created.Contest.ID, other.ID), ErrForbidden)
	suite.ErrorIs(suite.contests.Delete(suite.ctx(), 4242, owner.ID), ErrNotFound)
	suite.Equal(int64(1), suite.count(&models.Contest{}))
}

func (suite *ServiceTestSuite) TestGetByID_PersonalizesForViewer() {
	owner := suite.createUser("owner@example.com")
	viewer := suite.createUser("viewer@example.com")
	created := suite.createContest(owner.ID, "Round", base.Add(-time.Hour), base.Add(time.Hour))

	_, err := suite.bookmarks.Toggle(suite.ctx(), created.Contest.ID, viewer.ID)
	suite.Require().NoError(err)
	_, err = suite.solutions.Save(suite.ctx(), created.Contest.ID, SaveSolutionInput{Link: "https://viewer.example"}, viewer.ID)
	suite.Require().NoError(err)

	anonymous, err := suite.contests.GetByID(suite.ctx(), created.Contest.ID, 0)
	suite.Require().NoError(err)
	suite.False(anonymous.IsBookmarked)
	suite.False(anonymous.CanEdit)
	suite.Nil(anonymous.UserSolution)
	suite.Equal(models.ContestStatusOngoing, anonymous.Status)
	suite.Equal("owner@example.com", anonymous.Contest.Creator.Email)

	personal, err := suite.contests.GetByID(suite.ctx(), created.Contest.ID, viewer.ID)
	suite.Require().NoError(err)
	suite.True(personal.IsBookmarked)
	suite.False(personal.CanEdit)
	suite.Require().NotNil(personal.UserSolution)
	suite.Equal("https://viewer.example", personal.UserSolution.Link)

	asOwner, err := suite.contests.GetByID(suite.ctx(), created.Contest.ID, owner.ID)
	suite.Require().NoError(err)
	suite.True(asOwner.CanEdit)
	suite.False(asOwner.IsBookmarked)
}

func (suite *ServiceTestSuite) TestGetByID_AbsentIsNil() {
	view, err := suite.contests.GetByID(suite.ctx(), 12345, 0)
	suite.NoError(err)
	suite.Nil(view)
}

func (suite *ServiceTestSuite) TestList_Pagination() {
	owner := suite.createUser("owner@example.com")
	for i := 0; i < 25; i++ {
		start := base.Add(time.Duration(i+1) * time.Hour)
		suite.createContest(owner.ID, "Contest", start, start.Add(time.Hour))
	}

	page, err := suite.contests.List(suite.ctx(), ListContestsInput{Page: 3})
	suite.Require().NoError(err)
	suite.Equal(9, page.PageSize)
	suite.Equal(int64(25), page.Total)
	suite.Equal(3, page.TotalPages)
	suite.Len(page.Items, 7)

	first, err := suite.contests.List(suite.ctx(), ListContestsInput{Page: 1})
	suite.Require().NoError(err)
	suite.Len(first.Items, 9)
	suite.True(first.Items[0].Contest.StartDate.Equal(base.Add(time.Hour)))
}

func (suite *ServiceTestSuite) TestList_OngoingFilter() {
	owner := suite.createUser("owner@example.com")
	suite.createContest(owner.ID, "Finished", base.Add(-3*time.Hour), base.Add(-2*time.Hour))
	live := suite.createContest(owner.ID, "Live", base.Add(-time.Hour), base.Add(time.Hour))
	suite.createContest(owner.ID, "Later", base.Add(time.Hour), base.Add(2*time.Hour))

	page, err := suite.contests.List(suite.ctx(), ListContestsInput{Status: "ongoing"})
	suite.Require().NoError(err)
	suite.Require().Len(page.Items, 1)
	suite.Equal(live.Contest.ID, page.Items[0].Contest.ID)
	suite.Equal(models.ContestStatusOngoing, page.Items[0].Status)
}

func (suite *ServiceTestSuite) TestList_AllSentinelAndInvalidStatus() {
	owner := suite.createUser("owner@example.com")
	suite.createContest(owner.ID, "A", base.Add(-time.Hour), base.Add(time.Hour))
	suite.createContest(owner.ID, "B", base.Add(time.Hour), base.Add(2*time.Hour))

	page, err := suite.contests.List(suite.ctx(), ListContestsInput{Platform: "all", Category: "all", Status: "all"})
	suite.Require().NoError(err)
	suite.Len(page.Items, 2)

	page, err = suite.contests.List(suite.ctx(), ListContestsInput{Platform: "AtCoder"})
	suite.Require().NoError(err)
	suite.Empty(page.Items)
	suite.Equal(0, page.TotalPages)

	_, err = suite.contests.List(suite.ctx(), ListContestsInput{Status: "cancelled"})
	suite.ErrorIs(err, ErrInvalidInput)
}

func (suite *ServiceTestSuite) TestList_MarksViewerBookmarks() {
	owner := suite.createUser("owner@example.com")
	viewer := suite.createUser("viewer@example.com")
	a := suite.createContest(owner.ID, "A", base.Add(time.Hour), base.Add(2*time.Hour))
	suite.createContest(owner.ID, "B", base.Add(3*time.Hour), base.Add(4*time.Hour))

	_, err := suite.bookmarks.Toggle(suite.ctx(), a.Contest.ID, viewer.ID)
	suite.Require().NoError(err)

	page, err := suite.contests.List(suite.ctx(), ListContestsInput{ViewerID: viewer.ID})
	suite.Require().NoError(err)
	suite.Require().Len(page.Items, 2)
	suite.True(page.Items[0].IsBookmarked)
	suite.False(page.Items[1].IsBookmarked)
}

func (suite *ServiceTestSuite) TestStatusScenario() {
	owner := suite.createUser("owner@example.com")
	created := suite.createContest(owner.ID, "Timed", base.Add(time.Hour), base.Add(3*time.Hour))

	expectStatus := func(want models.ContestStatus) {
		view, err := suite.contests.GetByID(suite.ctx(), created.Contest.ID, 0)
		suite.Require().NoError(err)
		suite.Equal(want, view.Status)
	}

	expectStatus(models.ContestStatusUpcoming)
	suite.clock.Advance(2 * time.Hour)
	expectStatus(models.ContestStatusOngoing)
	suite.clock.Advance(2 * time.Hour)
	expectStatus(models.ContestStatusCompleted)
}

func (suite *ServiceTestSuite) TestListUpcoming() {
	owner := suite.createUser("owner@example.com")
	viewer := suite.createUser("viewer@example.com")
	suite.createContest(owner.ID, "Running", base.Add(-time.Hour), base.Add(time.Hour))

	var soonest *ContestView
	for i := 8; i >= 1; i-- {
		start := base.Add(time.Duration(i) * time.Hour)
		soonest = suite.createContest(owner.ID, "Upcoming", start, start.Add(time.Hour))
	}
	_, err := suite.bookmarks.Toggle(suite.ctx(), soonest.Contest.ID, viewer.ID)
	suite.Require().NoError(err)

	views, err := suite.contests.ListUpcoming(suite.ctx(), 0, viewer.ID)
	suite.Require().NoError(err)
	suite.Require().Len(views, 6)
	suite.Equal(soonest.Contest.ID, views[0].Contest.ID)
	suite.True(views[0].IsBookmarked)
	for _, v := range views {
		suite.Equal(models.ContestStatusUpcoming, v.Status)
	}
}

func (suite *ServiceTestSuite) TestDraftFromText_NotConfigured() {
	user := suite.createUser("creator@example.com")

	_, err := suite.contests.DraftFromText(suite.ctx(), "Round 1 starts tomorrow", user.ID)
	suite.ErrorIs(err, ErrAIServiceNotConfigured)

	_, err = suite.contests.DraftFromText(suite.ctx(), "Round 1 starts tomorrow", 0)
	suite.ErrorIs(err, ErrUnauthorized)
}
