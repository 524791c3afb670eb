package cmd

import (
	"fmt"
	"log"
	"sort"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/Rorical/nextword/internal/config"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage backend profiles",
	Long:  `Manage profiles pointing at different prediction servers.`,
}

var listProfilesCmd = &cobra.Command{
	Use:   "list",
	Short: "List all profiles",
	Run: func(cmd *cobra.Command, args []string) {
		// Load config
		cfg, err := config.LoadConfig()
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		fmt.Printf("Active Profile: %s\n\n", cfg.ActiveProfile)
		fmt.Println("Available Profiles:")
		for _, name := range sortedProfileNames(cfg, "") {
			marker := ""
			if name == cfg.ActiveProfile {
				marker = " (active)"
			}
			fmt.Printf("  %s%s\n", name, marker)
			fmt.Printf("    Base URL: %s\n", displayBaseURL(cfg.Profiles[name]))
			fmt.Println()
		}
	},
}

var showProfileCmd = &cobra.Command{
	Use:   "show [profile-name]",
	Short: "Show profile details",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		// Load config
		cfg, err := config.LoadConfig()
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		profileName := args[0]
		profile, exists := cfg.Profiles[profileName]
		if !exists {
			log.Fatalf("Profile '%s' does not exist", profileName)
		}

		fmt.Print(describeProfile(profileName, profile))
	},
}

var addProfileCmd = &cobra.Command{
	Use:   "add [profile-name]",
	Short: "Add a new profile",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		// Load config
		cfg, err := config.LoadConfig()
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		var profileName string
		if len(args) > 0 {
			profileName = args[0]
		} else {
			prompt := promptui.Prompt{
				Label:    "Profile name",
				Validate: validateNotEmpty,
			}
			profileName, err = prompt.Run()
			if err != nil {
				log.Fatalf("Prompt failed: %v", err)
			}
		}

		if _, exists := cfg.Profiles[profileName]; exists {
			log.Fatalf("Profile '%s' already exists", profileName)
		}

		profile, err := promptProfile(config.Profile{})
		if err != nil {
			log.Fatalf("Prompt failed: %v", err)
		}

		// Add profile to config
		cfg.Profiles[profileName] = profile

		// Save config
		if err := cfg.Save(); err != nil {
			log.Fatalf("Failed to save config: %v", err)
		}

		fmt.Printf("Profile '%s' added successfully!\n", profileName)
	},
}

var editProfileCmd = &cobra.Command{
	Use:   "edit [profile-name]",
	Short: "Edit an existing profile",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		// Load config
		cfg, err := config.LoadConfig()
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		profileName := profileArg(cfg, args, "Select profile to edit", "")
		profile, exists := cfg.Profiles[profileName]
		if !exists {
			log.Fatalf("Profile '%s' does not exist", profileName)
		}

		profile, err = promptProfile(profile)
		if err != nil {
			log.Fatalf("Prompt failed: %v", err)
		}

		cfg.Profiles[profileName] = profile

		// Save config
		if err := cfg.Save(); err != nil {
			log.Fatalf("Failed to save config: %v", err)
		}

		fmt.Printf("Profile '%s' updated successfully!\n", profileName)
	},
}

var deleteProfileCmd = &cobra.Command{
	Use:   "delete [profile-name]",
	Short: "Delete a profile",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		// Load config
		cfg, err := config.LoadConfig()
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		profileName := profileArg(cfg, args, "Select profile to delete", "")

		// Check if profile exists
		if _, exists := cfg.Profiles[profileName]; !exists {
			log.Fatalf("Profile '%s' does not exist", profileName)
		}

		// Confirm deletion
		confirmPrompt := promptui.Prompt{
			Label:     fmt.Sprintf("Delete profile '%s'? (y/N)", profileName),
			IsConfirm: true,
		}
		if _, err := confirmPrompt.Run(); err != nil {
			fmt.Println("Deletion cancelled")
			return
		}

		removeProfile(cfg, profileName)

		// Save config
		if err := cfg.Save(); err != nil {
			log.Fatalf("Failed to save config: %v", err)
		}

		fmt.Printf("Profile '%s' deleted successfully!\n", profileName)
	},
}

var switchProfileCmd = &cobra.Command{
	Use:   "switch [profile-name]",
	Short: "Switch to a different profile",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		// Load config
		cfg, err := config.LoadConfig()
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		if len(args) == 0 && len(sortedProfileNames(cfg, cfg.ActiveProfile)) == 0 {
			fmt.Println("No other profiles available to switch to")
			return
		}

		profileName := profileArg(cfg, args, "Select profile to switch to", cfg.ActiveProfile)

		// Check if profile exists
		if _, exists := cfg.Profiles[profileName]; !exists {
			log.Fatalf("Profile '%s' does not exist", profileName)
		}

		// Switch to the profile
		cfg.ActiveProfile = profileName

		// Save config
		if err := cfg.Save(); err != nil {
			log.Fatalf("Failed to save config: %v", err)
		}

		fmt.Printf("Switched to profile '%s'\n", profileName)
	},
}

// profileArg returns the profile named on the command line or lets the user pick one.
func profileArg(cfg *config.Config, args []string, label, exclude string) string {
	if len(args) > 0 {
		return args[0]
	}

	// Let user select from existing profiles
	names := sortedProfileNames(cfg, exclude)
	if len(names) == 0 {
		log.Fatalf("No profiles available")
	}

	prompt := promptui.Select{
		Label: label,
		Items: names,
	}
	_, name, err := prompt.Run()
	if err != nil {
		log.Fatalf("Selection failed: %v", err)
	}
	return name
}

func promptProfile(profile config.Profile) (config.Profile, error) {
	// Prompt for Base URL (optional)
	baseURLPrompt := promptui.Prompt{
		Label:    "Base URL (empty for " + config.LocalOrigin + ")",
		Default:  profile.BaseURL,
		Validate: validateBaseURL,
	}
	baseURL, err := baseURLPrompt.Run()
	if err != nil {
		return profile, err
	}

	// Prompt for poll interval
	pollPrompt := promptui.Prompt{
		Label:    "Health poll interval in seconds (0 for default)",
		Default:  strconv.Itoa(profile.PollIntervalSeconds),
		Validate: validateSeconds,
	}
	poll, err := pollPrompt.Run()
	if err != nil {
		return profile, err
	}

	// Prompt for request timeout
	timeoutPrompt := promptui.Prompt{
		Label:    "Request timeout in seconds (0 for none)",
		Default:  strconv.Itoa(profile.TimeoutSeconds),
		Validate: validateSeconds,
	}
	timeout, err := timeoutPrompt.Run()
	if err != nil {
		return profile, err
	}

	examplesPrompt := promptui.Prompt{
		Label:   "Example prompts (comma separated, empty for defaults)",
		Default: strings.Join(profile.Examples, ", "),
	}
	examples, err := examplesPrompt.Run()
	if err != nil {
		return profile, err
	}

	profile.BaseURL = strings.TrimSpace(baseURL)
	profile.PollIntervalSeconds, _ = strconv.Atoi(strings.TrimSpace(poll))
	profile.TimeoutSeconds, _ = strconv.Atoi(strings.TrimSpace(timeout))
	profile.Examples = parseExamples(examples)
	return profile, nil
}

// removeProfile deletes name, moving the active profile elsewhere and
// recreating the local default when the last profile goes.
func removeProfile(cfg *config.Config, name string) {
	delete(cfg.Profiles, name)
	if len(cfg.Profiles) == 0 {
		cfg.Profiles[config.DefaultProfileName] = config.Profile{}
	}
	if _, ok := cfg.Profiles[cfg.ActiveProfile]; !ok {
		cfg.ActiveProfile = sortedProfileNames(cfg, "")[0]
	}
}

func sortedProfileNames(cfg *config.Config, exclude string) []string {
	names := make([]string, 0, len(cfg.Profiles))
	for name := range cfg.Profiles {
		if name != exclude {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

func describeProfile(name string, profile config.Profile) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Profile: %s\n", name)
	fmt.Fprintf(&b, "Base URL: %s\n", displayBaseURL(profile))
	poll := "default (" + config.DefaultPollInterval.String() + ")"
	if profile.PollIntervalSeconds > 0 {
		poll = strconv.Itoa(profile.PollIntervalSeconds) + "s"
	}
	fmt.Fprintf(&b, "Poll Interval: %s\n", poll)
	timeout := "none"
	if profile.TimeoutSeconds > 0 {
		timeout = strconv.Itoa(profile.TimeoutSeconds) + "s"
	}
	fmt.Fprintf(&b, "Timeout: %s\n", timeout)
	examples := profile.Examples
	if len(examples) == 0 {
		examples = config.DefaultExamples
	}
	fmt.Fprintf(&b, "Examples: %s\n", strings.Join(examples, ", "))
	return b.String()
}

func displayBaseURL(profile config.Profile) string {
	resolved, err := config.ResolveBaseURL(profile.BaseURL)
	if err != nil {
		return profile.BaseURL + " (invalid: " + err.Error() + ")"
	}
	return resolved
}

func parseExamples(raw string) []string {
	var examples []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			examples = append(examples, part)
		}
	}
	return examples
}

func validateNotEmpty(input string) error {
	if strings.TrimSpace(input) == "" {
		return fmt.Errorf("value is required")
	}
	return nil
}

func validateBaseURL(input string) error {
	_, err := config.ResolveBaseURL(strings.TrimSpace(input))
	return err
}

func validateSeconds(input string) error {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil || n < 0 {
		return fmt.Errorf("enter a whole number of seconds")
	}
	return nil
}

func init() {
	// Add subcommands to profile
	profileCmd.AddCommand(listProfilesCmd)
	profileCmd.AddCommand(showProfileCmd)
	profileCmd.AddCommand(addProfileCmd)
	profileCmd.AddCommand(editProfileCmd)
	profileCmd.AddCommand(deleteProfileCmd)
	profileCmd.AddCommand(switchProfileCmd)
}
