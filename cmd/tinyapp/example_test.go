package main

import (
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strings"
)

func newExampleServer() (*httptest.Server, *http.Client, error) {
	a, err := NewApp(newTestConfig())
	if err != nil {
		return nil, nil, err
	}
	ts := httptest.NewServer(a.Handler)

	jar, err := cookiejar.New(nil)
	if err != nil {
		ts.Close()
		return nil, nil, err
	}
	client := &http.Client{
		Jar: jar,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
	return ts, client, nil
}

func printResponse(resp *http.Response) error {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if err = resp.Body.Close(); err != nil {
		return err
	}
	fmt.Println(resp.StatusCode)
	if location := resp.Header.Get("Location"); location != "" {
		fmt.Println(location)
		return nil
	}
	fmt.Println(string(body))
	return nil
}

func Example() {
	ts, client, err := newExampleServer()
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	defer ts.Close()

	fmt.Println("Hello:")
	resp, err := client.Get(ts.URL + "/")
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	if err = printResponse(resp); err != nil {
		fmt.Println("Error:", err)
		return
	}

	fmt.Println("My URLs before login:")
	resp, err = client.Get(ts.URL + "/urls")
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	if err = printResponse(resp); err != nil {
		fmt.Println("Error:", err)
		return
	}

	fmt.Println("Login:")
	form := url.Values{"email": {TestEmail}, "password": {TestPassword}}
	resp, err = client.Post(ts.URL+"/login", FormKey, strings.NewReader(form.Encode()))
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	if err = printResponse(resp); err != nil {
		fmt.Println("Error:", err)
		return
	}

	fmt.Println("Change destination:")
	form = url.Values{"longURL": {"http://example.com"}}
	resp, err = client.Post(ts.URL+"/urls/"+SeedOwnID, FormKey, strings.NewReader(form.Encode()))
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	if err = printResponse(resp); err != nil {
		fmt.Println("Error:", err)
		return
	}

	fmt.Println("Follow short URL:")
	resp, err = client.Get(ts.URL + "/u/" + SeedOwnID)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	if err = printResponse(resp); err != nil {
		fmt.Println("Error:", err)
		return
	}

	fmt.Println("Delete foreign URL:")
	resp, err = client.Post(ts.URL+"/urls/"+SeedForeignID+"/delete", FormKey, nil)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	if err = printResponse(resp); err != nil {
		fmt.Println("Error:", err)
		return
	}

	// Output:
	// Hello:
	// 200
	// Hello!
	// My URLs before login:
	// 403
	// You must login/register first
	// Login:
	// 303
	// /urls
	// Change destination:
	// 303
	// /urls
	// Follow short URL:
	// 302
	// http://example.com
	// Delete foreign URL:
	// 403
	// Not authorized to access this page
}
