package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const DEFAULT_API_URL = "http://localhost:8080"

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginBottom(1)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	inputStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86"))

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)
)

type step int

const (
	stepEnteringEmail step = iota
	stepEnteringPassword
	stepEnteringFirstName
	stepEnteringLastName
	stepRegistering
	stepLoggingIn
	stepSeedingRooms
	stepSeedingFacilities
	stepComplete
)

type model struct {
	step         step
	apiURL       string
	email        string
	password     string
	firstName    string
	lastName     string
	authToken    string
	currentInput string
	message      string
	roomCount    int
	quitting     bool
}

type registerDoneMsg struct{ alreadyExists bool }
type loginSuccessMsg struct{ token string }
type roomsSeededMsg struct{ count int }
type facilitiesSeededMsg struct{ count int }
type errMsg struct{ err error }

func (e errMsg) Error() string { return e.err.Error() }

var starterRooms = []map[string]interface{}{
	{"number": "101", "type": "single", "capacity": 1, "price_per_night": 79.0},
	{"number": "102", "type": "double", "capacity": 2, "price_per_night": 109.0},
	{"number": "103", "type": "double", "capacity": 2, "price_per_night": 109.0},
	{"number": "201", "type": "suite", "capacity": 4, "price_per_night": 199.0},
	{"number": "202", "type": "family", "capacity": 5, "price_per_night": 159.0},
}

var starterFacilities = []map[string]interface{}{
	{"name": "Breakfast", "description": "Buffet breakfast 7-10am", "price_per_day": 12.0},
	{"name": "Parking", "description": "Underground parking spot", "price_per_day": 15.0},
	{"name": "Spa", "description": "Spa and sauna access", "price_per_day": 25.0},
	{"name": "Late checkout", "description": "Checkout until 2pm", "price_per_day": 20.0},
}

func initialModel() model {
	apiURL := os.Getenv("HOTEL_API_URL")
	if apiURL == "" {
		apiURL = DEFAULT_API_URL
	}
	return model{
		step:   stepEnteringEmail,
		apiURL: apiURL,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func postJSON(client *http.Client, url, token string, payload interface{}) (*http.Response, error) {
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequest("POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return client.Do(req)
}

func registerAdmin(apiURL, email, password, firstName, lastName string) tea.Cmd {
	return func() tea.Msg {
		client := &http.Client{Timeout: 10 * time.Second}

		payload := map[string]string{
			"email":     email,
			"password":  password,
			"firstname": firstName,
			"lastname":  lastName,
		}

		resp, err := postJSON(client, apiURL+"/api/v1/auth/register", "", payload)
		if err != nil {
			return errMsg{fmt.Errorf("server not reachable at %s: %w", apiURL, err)}
		}
		defer resp.Body.Close()

		switch resp.StatusCode {
		case http.StatusCreated:
			return registerDoneMsg{}
		case http.StatusBadRequest:
			// account may already exist; try logging in with the
			// supplied credentials instead
			return registerDoneMsg{alreadyExists: true}
		default:
			return errMsg{fmt.Errorf("registration failed with status %d", resp.StatusCode)}
		}
	}
}

func loginAdmin(apiURL, email, password string) tea.Cmd {
	return func() tea.Msg {
		client := &http.Client{Timeout: 10 * time.Second}

		payload := map[string]string{
			"email":    email,
			"password": password,
		}

		resp, err := postJSON(client, apiURL+"/api/v1/auth/login", "", payload)
		if err != nil {
			return errMsg{fmt.Errorf("server not reachable at %s: %w", apiURL, err)}
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return errMsg{fmt.Errorf("login failed with status %d", resp.StatusCode)}
		}

		var result map[string]interface{}
		if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
			return errMsg{fmt.Errorf("invalid login response: %w", err)}
		}

		token, ok := result["token"].(string)
		if !ok || token == "" {
			return errMsg{fmt.Errorf("login response has no token")}
		}

		return loginSuccessMsg{token: token}
	}
}

func seedRooms(apiURL, token string) tea.Cmd {
	return func() tea.Msg {
		client := &http.Client{Timeout: 10 * time.Second}

		count := 0
		for _, room := range starterRooms {
			resp, err := postJSON(client, apiURL+"/api/v1/rooms", token, room)
			if err != nil {
				return errMsg{fmt.Errorf("failed to create room: %w", err)}
			}
			resp.Body.Close()
			if resp.StatusCode == http.StatusCreated {
				count++
			}
		}

		return roomsSeededMsg{count: count}
	}
}

func seedFacilities(apiURL, token string) tea.Cmd {
	return func() tea.Msg {
		client := &http.Client{Timeout: 10 * time.Second}

		count := 0
		for _, facility := range starterFacilities {
			resp, err := postJSON(client, apiURL+"/api/v1/facilities", token, facility)
			if err != nil {
				return errMsg{fmt.Errorf("failed to create facility: %w", err)}
			}
			resp.Body.Close()
			if resp.StatusCode == http.StatusCreated {
				count++
			}
		}

		return facilitiesSeededMsg{count: count}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case "backspace":
			if len(m.currentInput) > 0 {
				m.currentInput = m.currentInput[:len(m.currentInput)-1]
			}

		case "enter":
			switch m.step {
			case stepEnteringEmail:
				if m.currentInput != "" {
					m.email = m.currentInput
					m.currentInput = ""
					m.step = stepEnteringPassword
				}

			case stepEnteringPassword:
				if m.currentInput != "" {
					m.password = m.currentInput
					m.currentInput = ""
					m.step = stepEnteringFirstName
				}

			case stepEnteringFirstName:
				if m.currentInput != "" {
					m.firstName = m.currentInput
					m.currentInput = ""
					m.step = stepEnteringLastName
				}

			case stepEnteringLastName:
				if m.currentInput != "" {
					m.lastName = m.currentInput
					m.currentInput = ""
					m.step = stepRegistering
					m.message = "Registering admin account..."
					return m, registerAdmin(m.apiURL, m.email, m.password, m.firstName, m.lastName)
				}

			case stepComplete:
				m.quitting = true
				return m, tea.Quit
			}

		default:
			if m.step == stepEnteringEmail || m.step == stepEnteringPassword ||
				m.step == stepEnteringFirstName || m.step == stepEnteringLastName {
				m.currentInput += msg.String()
			}
		}

	case registerDoneMsg:
		if msg.alreadyExists {
			m.message = "Account exists, logging in..."
		} else {
			m.message = "Account created, logging in..."
		}
		m.step = stepLoggingIn
		return m, loginAdmin(m.apiURL, m.email, m.password)

	case loginSuccessMsg:
		m.authToken = msg.token
		m.step = stepSeedingRooms
		m.message = "Seeding starter rooms..."
		return m, seedRooms(m.apiURL, m.authToken)

	case roomsSeededMsg:
		m.roomCount = msg.count
		m.step = stepSeedingFacilities
		m.message = "Seeding starter facilities..."
		return m, seedFacilities(m.apiURL, m.authToken)

	case facilitiesSeededMsg:
		m.step = stepComplete
		m.message = fmt.Sprintf("Done: %d rooms and %d facilities created.", m.roomCount, msg.count)

	case errMsg:
		m.message = errorStyle.Render("Error: " + msg.Error())
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

func (m model) View() string {
	if m.quitting && m.step != stepComplete {
		return m.message + "\n"
	}

	s := titleStyle.Render("Hotel Server Setup") + "\n"

	switch m.step {
	case stepEnteringEmail:
		s += promptStyle.Render("Admin email: ") + inputStyle.Render(m.currentInput) + "_\n"

	case stepEnteringPassword:
		masked := ""
		for range m.currentInput {
			masked += "*"
		}
		s += promptStyle.Render("Admin password: ") + inputStyle.Render(masked) + "_\n"

	case stepEnteringFirstName:
		s += promptStyle.Render("First name: ") + inputStyle.Render(m.currentInput) + "_\n"

	case stepEnteringLastName:
		s += promptStyle.Render("Last name: ") + inputStyle.Render(m.currentInput) + "_\n"

	case stepRegistering, stepLoggingIn, stepSeedingRooms, stepSeedingFacilities:
		s += m.message + "\n"

	case stepComplete:
		s += successStyle.Render(m.message) + "\n"
		s += "Press enter to exit.\n"
	}

	s += "\n(ctrl+c to quit)\n"
	return s
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		fmt.Printf("setup failed: %v\n", err)
		os.Exit(1)
	}
}
