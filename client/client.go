// Package client is a thin HTTP client for the nc-news API.
package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/ncnews/newsapi/internal/model"
)

type Client struct {
	http.Client
	Addr string
}

func (c *Client) Ping() (string, error) {
	req, err := http.NewRequest("GET", c.Addr+"/ping", nil)
	if err != nil {
		return "", err
	}

	resp, err := c.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	return string(body), err
}

// Topics fetches all topics.
func (c *Client) Topics() ([]model.Topic, error) {
	var envelope struct {
		Topics []model.Topic `json:"topics"`
	}
	if err := c.getJSON("/api/topics", &envelope); err != nil {
		return nil, err
	}

	return envelope.Topics, nil
}

// Articles fetches all articles with their comment counts.
func (c *Client) Articles() ([]model.ArticleWithCount, error) {
	var envelope struct {
		Articles []model.ArticleWithCount `json:"articles"`
	}
	if err := c.getJSON("/api/articles", &envelope); err != nil {
		return nil, err
	}

	return envelope.Articles, nil
}

// User fetches one user profile by username.
func (c *Client) User(username string) (*model.User, error) {
	var envelope struct {
		User *model.User `json:"user"`
	}
	if err := c.getJSON("/api/users/"+url.PathEscape(username), &envelope); err != nil {
		return nil, err
	}

	return envelope.User, nil
}

// VoteArticle sends a vote ("up" or "down") for an article and returns the
// updated article.
func (c *Client) VoteArticle(articleID, vote string) (*model.Article, error) {
	u := c.Addr + "/api/articles/" + url.PathEscape(articleID) + "?vote=" + url.QueryEscape(vote)

	req, err := http.NewRequest("PATCH", u, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, statusError(resp)
	}

	var envelope struct {
		Article *model.Article `json:"article"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, err
	}

	return envelope.Article, nil
}

// PostComment adds a comment to an article and returns the created record.
func (c *Client) PostComment(articleID, body, createdBy string) (*model.Comment, error) {
	payload, err := json.Marshal(map[string]string{
		"body":       body,
		"created_by": createdBy,
	})
	if err != nil {
		return nil, err
	}

	u := c.Addr + "/api/articles/" + url.PathEscape(articleID) + "/comments"

	req, err := http.NewRequest("POST", u, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return nil, statusError(resp)
	}

	var envelope struct {
		Comment *model.Comment `json:"comment"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, err
	}

	return envelope.Comment, nil
}

func (c *Client) getJSON(path string, v interface{}) error {
	req, err := http.NewRequest("GET", c.Addr+path, nil)
	if err != nil {
		return err
	}

	resp, err := c.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return statusError(resp)
	}

	return json.NewDecoder(resp.Body).Decode(v)
}

func statusError(resp *http.Response) error {
	var e struct {
		Msg string `json:"msg"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&e); err == nil && e.Msg != "" {
		return fmt.Errorf("%s: %s", resp.Status, e.Msg)
	}

	return fmt.Errorf("unexpected status %s", resp.Status)
}
