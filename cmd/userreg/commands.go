package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"user-registry/internal/i18n"
	"user-registry/internal/service"
	"user-registry/internal/shell"
)

// runMenu leaves SIGINT at its default so Ctrl-C ends a session blocked on input.
func runMenu(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	session := shell.NewSession(service.NewUserService(a.users), shell.Options{
		In:      os.Stdin,
		Out:     cmd.OutOrStdout(),
		Printer: i18n.NewPrinter(a.cfg.Locale),
		Logger:  a.logger,
	})
	return session.Run(ctx)
}

func runBackup(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	store, err := buildStorage(ctx, a.cfg, a.logger)
	if err != nil {
		return fmt.Errorf("setup storage: %w", err)
	}

	backups := service.NewBackupService(a.users, store, service.BackupOptions{
		Bucket:    a.cfg.Backup.Bucket,
		KeyPrefix: a.cfg.Backup.KeyPrefix,
		Progress:  progressPrinter(cmd.ErrOrStderr()),
	})
	location, err := backups.Snapshot(ctx)
	if err != nil {
		return err
	}

	a.logger.WithField("location", location).Info("snapshot uploaded")
	fmt.Fprintln(cmd.OutOrStdout(), location)
	return nil
}

func runBackupList(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	store, err := buildStorage(ctx, a.cfg, a.logger)
	if err != nil {
		return fmt.Errorf("setup storage: %w", err)
	}

	backups := service.NewBackupService(a.users, store, service.BackupOptions{
		Bucket:    a.cfg.Backup.Bucket,
		KeyPrefix: a.cfg.Backup.KeyPrefix,
	})
	objects, err := backups.ListSnapshots(ctx)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(objects) == 0 {
		fmt.Fprintln(out, "no snapshots")
		return nil
	}
	for _, obj := range objects {
		modified := "-"
		if obj.LastModified != nil {
			modified = obj.LastModified.UTC().Format("2006-01-02 15:04:05")
		}
		fmt.Fprintf(out, "%-60s %10d  %s\n", obj.Key, obj.Size, modified)
	}
	return nil
}
