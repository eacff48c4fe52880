package handlers

import (
	"fmt"
	"net/http"
	"time"

	apierrors "github.com/yukikurage/contest-tracker/internal/errors"
)

func (suite *HandlerTestSuite) TestCreateContest_RequiresAuth() {
	w := suite.request(http.MethodPost, "/api/contests", "", contestPayload("Round 1", base.Add(time.Hour)))
	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *HandlerTestSuite) TestCreateContest_Validation() {
	_, token := suite.signUp("Alice", "alice@example.com")

	payload := contestPayload("Round 1", base.Add(time.Hour))
	payload["end_date"] = base.Format(time.RFC3339)
	w := suite.request(http.MethodPost, "/api/contests", token, payload)
	suite.Equal(http.StatusBadRequest, w.Code)

	var body apierrors.APIError
	suite.decode(w, &body)
	suite.Equal("start_date must be before end_date", body.Message)

	payload = contestPayload("", base.Add(time.Hour))
	w = suite.request(http.MethodPost, "/api/contests", token, payload)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestGetContest() {
	_, token := suite.signUp("Alice", "alice@example.com")
	id := suite.createContest(token, "Round 1", base.Add(time.Hour))

	w := suite.request(http.MethodGet, fmt.Sprintf("/api/contests/%d", id), "", nil)
	suite.Require().Equal(http.StatusOK, w.Code)

	var anonymous map[string]interface{}
	suite.decode(w, &anonymous)
	suite.Equal("Round 1", anonymous["title"])
	suite.Equal("upcoming", anonymous["status"])
	suite.Equal("1 day 2 hours", anonymous["duration"])
	suite.Equal(false, anonymous["can_edit"])
	suite.Nil(anonymous["user_solution"])

	w = suite.request(http.MethodGet, fmt.Sprintf("/api/contests/%d", id), token, nil)
	var owner map[string]interface{}
	suite.decode(w, &owner)
	suite.Equal(true, owner["can_edit"])
}

func (suite *HandlerTestSuite) TestGetContest_NotFound() {
	w := suite.request(http.MethodGet, "/api/contests/999", "", nil)
	suite.Equal(http.StatusNotFound, w.Code)

	w = suite.request(http.MethodGet, "/api/contests/abc", "", nil)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestListContests() {
	_, token := suite.signUp("Alice", "alice@example.com")
	for i := 0; i < 12; i++ {
		suite.createContest(token, fmt.Sprintf("Round %d", i), base.Add(time.Duration(i+1)*time.Hour))
	}

	w := suite.request(http.MethodGet, "/api/contests?page=2", "", nil)
	suite.Require().Equal(http.StatusOK, w.Code)

	var page struct {
		Contests   []map[string]interface{} `json:"contests"`
		Page       int                      `json:"page"`
		PageSize   int                      `json:"page_size"`
		TotalCount int64                    `json:"total_count"`
		TotalPages int                      `json:"total_pages"`
	}
	suite.decode(w, &page)
	suite.Len(page.Contests, 3)
	suite.Equal(2, page.Page)
	suite.Equal(9, page.PageSize)
	suite.Equal(int64(12), page.TotalCount)
	suite.Equal(2, page.TotalPages)
	suite.Equal("Round 9", page.Contests[0]["title"])
}

func (suite *HandlerTestSuite) TestListContests_StatusFilter() {
	_, token := suite.signUp("Alice", "alice@example.com")
	suite.createContest(token, "Ongoing", base.Add(-time.Hour))
	suite.createContest(token, "Upcoming", base.Add(time.Hour))

	w := suite.request(http.MethodGet, "/api/contests?status=ongoing", "", nil)
	suite.Require().Equal(http.StatusOK, w.Code)

	var page struct {
		Contests []map[string]interface{} `json:"contests"`
	}
	suite.decode(w, &page)
	suite.Require().Len(page.Contests, 1)
	suite.Equal("Ongoing", page.Contests[0]["title"])

	w = suite.request(http.MethodGet, "/api/contests?status=all", "", nil)
	suite.decode(w, &page)
	suite.Len(page.Contests, 2)

	w = suite.request(http.MethodGet, "/api/contests?status=later", "", nil)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestListUpcoming() {
	_, token := suite.signUp("Alice", "alice@example.com")
	suite.createContest(token, "Past", base.Add(-48*time.Hour))
	for i := 0; i < 8; i++ {
		suite.createContest(token, fmt.Sprintf("Future %d", i), base.Add(time.Duration(i+1)*time.Hour))
	}

	w := suite.request(http.MethodGet, "/api/contests/upcoming", "", nil)
	suite.Require().Equal(http.StatusOK, w.Code)

	var body struct {
		Contests []map[string]interface{} `json:"contests"`
	}
	suite.decode(w, &body)
	suite.Len(body.Contests, 6)
	suite.Equal("Future 0", body.Contests[0]["title"])

	w = suite.request(http.MethodGet, "/api/contests/upcoming?limit=2", "", nil)
	suite.decode(w, &body)
	suite.Len(body.Contests, 2)

	w = suite.request(http.MethodGet, "/api/contests/upcoming?limit=zero", "", nil)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestUpdateContest_OnlyCreator() {
	_, owner := suite.signUp("Alice", "alice@example.com")
	_, other := suite.signUp("Bob", "bob@example.com")
	id := suite.createContest(owner, "Round 1", base.Add(time.Hour))
	path := fmt.Sprintf("/api/contests/%d", id)

	w := suite.request(http.MethodPatch, path, other, map[string]string{"title": "Hijacked"})
	suite.Equal(http.StatusForbidden, w.Code)

	w = suite.request(http.MethodPatch, path, owner, map[string]string{"title": "Round 1 (Div. 2)"})
	suite.Require().Equal(http.StatusOK, w.Code)

	var body map[string]interface{}
	suite.decode(w, &body)
	suite.Equal("Round 1 (Div. 2)", body["title"])
	suite.Equal("Codeforces", body["platform"])

	w = suite.request(http.MethodPatch, "/api/contests/999", owner, map[string]string{"title": "x"})
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlerTestSuite) TestDeleteContest() {
	_, owner := suite.signUp("Alice", "alice@example.com")
	_, other := suite.signUp("Bob", "bob@example.com")
	id := suite.createContest(owner, "Round 1", base.Add(time.Hour))
	path := fmt.Sprintf("/api/contests/%d", id)

	suite.Require().Equal(http.StatusOK, suite.request(http.MethodPost, path+"/bookmark", other, nil).Code)

	w := suite.request(http.MethodDelete, path, other, nil)
	suite.Equal(http.StatusForbidden, w.Code)

	w = suite.request(http.MethodDelete, path, owner, nil)
	suite.Equal(http.StatusOK, w.Code)

	suite.Equal(http.StatusNotFound, suite.request(http.MethodGet, path, "", nil).Code)

	var bookmarks int64
	suite.Require().NoError(suite.db.Table("bookmarks").Count(&bookmarks).Error)
	suite.Zero(bookmarks)
}

func (suite *HandlerTestSuite) TestDraftContest_NotConfigured() {
	_, token := suite.signUp("Alice", "alice@example.com")

	w := suite.request(http.MethodPost, "/api/contests/draft", token, map[string]string{"text": "Weekly contest on Sunday"})
	suite.Equal(http.StatusServiceUnavailable, w.Code)

	w = suite.request(http.MethodPost, "/api/contests/draft", "", map[string]string{"text": "Weekly contest"})
	suite.Equal(http.StatusUnauthorized, w.Code)
}
