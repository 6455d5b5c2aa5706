package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/garrettladley/goura/oura"
)

func ringCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ring [document-id]",
		Short: "Show ring configuration",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			if len(args) == 1 {
				ring, err := client.RingConfiguration(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				printRing(ring)
				return nil
			}

			page, err := client.RingConfigurations(cmd.Context())
			if err != nil {
				return err
			}
			for i := range page.Data {
				printRing(&page.Data[i])
			}
			return nil
		},
	}
}

func printRing(ring *oura.RingConfiguration) {
	fmt.Println(titleStyle.Render("Ring " + ring.ID))
	fmt.Println(renderField("Color", ring.Color))
	fmt.Println(renderField("Design", ring.Design))
	fmt.Println(renderField("Firmware", ring.FirmwareVersion))
	fmt.Println(renderField("Hardware", ring.HardwareType))
	if ring.Size != nil {
		fmt.Println(renderField("Size", fmt.Sprintf("%d", *ring.Size)))
	}
	if ring.SetUpAt != nil {
		fmt.Println(renderField("Set up", ring.SetUpAt.Format("2006-01-02")))
	}
}
