package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/fatih/color"
)

const baseURL = "http://localhost:3000/api"

// Pretty print JSON helper
func prettyPrint(v interface{}) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("%v\n", v)
		return
	}
	fmt.Println(string(b))
}

// Request helper
func sendRequest(method, url, token string, body interface{}) (*http.Response, []byte, error) {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		bodyReader = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, baseURL+url, bodyReader)
	if err != nil {
		return nil, nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	return resp, respBody, err
}

func dataField(body []byte) map[string]interface{} {
	var parsed map[string]interface{}
	json.Unmarshal(body, &parsed)
	if data, ok := parsed["data"].(map[string]interface{}); ok {
		return data
	}
	return nil
}

func main() {
	// Needs a running server plus two matched users. Grab tokens from
	// /auth/v1/login first and export them alongside the match id.
	ownerToken := os.Getenv("OWNER_TOKEN")
	partnerToken := os.Getenv("PARTNER_TOKEN")
	matchID := os.Getenv("MATCH_ID")
	if ownerToken == "" || partnerToken == "" || matchID == "" {
		color.Red("OWNER_TOKEN, PARTNER_TOKEN and MATCH_ID must be set")
		os.Exit(1)
	}

	color.Cyan("🚀 Starting Collaboration Flow API Test\n")

	// 1. List available methods
	color.Yellow("\n[OWNER] 1. List Collaboration Methods")
	resp, body, err := sendRequest("GET", "/collab/v1/methods", ownerToken, nil)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	var methodsResp map[string]interface{}
	json.Unmarshal(body, &methodsResp)
	prettyPrint(methodsResp)

	// 2. Propose a collaboration on the match
	color.Yellow("\n[OWNER] 2. Propose Collaboration (method 1)")
	proposeReq := map[string]interface{}{
		"match_id":  matchID,
		"method_id": 1,
	}
	resp, body, err = sendRequest("POST", "/collab/v1", ownerToken, proposeReq)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)

	var collabID string
	if data := dataField(body); data != nil {
		prettyPrint(data)
		if id, ok := data["id"].(string); ok {
			collabID = id
		}
	}
	if collabID == "" {
		color.Red("No collaboration id returned, aborting")
		os.Exit(1)
	}

	// 3. Partner accepts
	color.Yellow("\n[PARTNER] 3. Accept Collaboration")
	resp, body, err = sendRequest("POST", "/collab/v1/"+collabID+"/accept", partnerToken, nil)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	prettyPrint(dataField(body))

	// 4. Owner opens step 0 and works the editor
	color.Yellow("\n[OWNER] 4. Open Step 0")
	resp, body, err = sendRequest("POST", "/collab/v1/"+collabID+"/steps/0/open", ownerToken, nil)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	prettyPrint(dataField(body))

	color.Yellow("\n[OWNER] 5. Toggle First Criterion")
	resp, body, err = sendRequest("POST", "/collab/v1/step/toggle", ownerToken, map[string]interface{}{
		"criterion_index": 0,
	})
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	prettyPrint(dataField(body))

	color.Yellow("\n[OWNER] 6. Save Step With Notes")
	resp, body, err = sendRequest("POST", "/collab/v1/step/save", ownerToken, map[string]interface{}{
		"notes": "Kicked off the first milestone together.",
	})
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	prettyPrint(dataField(body))

	// 7. Partner sees the updated collaboration
	color.Yellow("\n[PARTNER] 7. Show Collaboration")
	resp, body, err = sendRequest("GET", "/collab/v1/"+collabID, partnerToken, nil)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	prettyPrint(dataField(body))

	// 8. Cleanup: cancel the collaboration so the match can start another
	color.Yellow("\n[OWNER] 8. Cleanup: Cancel Collaboration")
	resp, body, err = sendRequest("POST", "/collab/v1/"+collabID+"/cancel", ownerToken, nil)
	if err != nil {
		color.Red("Failed: %v", err)
	} else {
		color.Green("Status: %s", resp.Status)
		prettyPrint(dataField(body))
	}

	color.Cyan("\n✅ Test Sequence Complete")
}
