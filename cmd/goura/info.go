package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func infoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show personal info",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			info, err := client.PersonalInfo(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Println(titleStyle.Render("Personal Info"))
			fmt.Println(renderField("ID", info.ID))
			fmt.Println(renderField("Email", info.Email))
			fmt.Println(renderField("Age", fmt.Sprintf("%d", info.Age)))
			fmt.Println(renderField("Weight", fmt.Sprintf("%.1f kg", info.Weight)))
			fmt.Println(renderField("Height", fmt.Sprintf("%.2f m", info.Height)))
			fmt.Println(renderField("Biological sex", info.BiologicalSex))

			return nil
		},
	}
}
