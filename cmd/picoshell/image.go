package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ezrec/picoshell/bootimage"
)

func newImageCommand() (cmd *cobra.Command) {
	cmd = &cobra.Command{
		Use:   "image",
		Short: "Check or seal a second-stage boot image",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "verify FILE",
		Short: "Verify the checksum of a boot image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			img, err := loadImage(args[0])
			if err != nil {
				return
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%v: ok, checksum 0x%08x\n", args[0], img.Sum())
			return
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "seal PAYLOAD OUTPUT",
		Short: "Append the checksum to a 252 byte payload",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			return sealImage(args[0], args[1])
		},
	})

	return
}

func loadImage(path string) (img *bootimage.Image, err error) {
	inf, err := os.Open(path)
	if err != nil {
		return
	}
	defer inf.Close()

	img, err = bootimage.Load(inf)
	if err != nil {
		err = fmt.Errorf("%v: %w", path, err)
	}

	return
}

func sealImage(input, output string) (err error) {
	data, err := os.ReadFile(input)
	if err != nil {
		return
	}

	if len(data) != bootimage.BOOT2_PAYLOAD {
		err = fmt.Errorf("%v: %w", input, bootimage.ErrImageSize)
		return
	}

	var payload [bootimage.BOOT2_PAYLOAD]byte
	copy(payload[:], data)

	img := bootimage.Seal(payload)
	return os.WriteFile(output, img[:], 0o644)
}
