package sftpService

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/sftp"
	"golang.org/x/crypto/ssh"

	"github.com/miguelsot0b/primarios727-sistema-produccion/internal/utils"
)

func NewClient() (*sftp.Client, *ssh.Client, error) {
	sshHost := os.Getenv("sftp_host")
	sshPort := os.Getenv("sftp_port")
	sshUsername := os.Getenv("sftp_user")
	sshPassword := os.Getenv("sftp_password")

	if sshHost == "" {
		return nil, nil, fmt.Errorf("not found sftp_host")
	}
	if sshPort == "" {
		sshPort = "22"
	}

	sshConfig := &ssh.ClientConfig{
		User: sshUsername,
		Auth: []ssh.AuthMethod{
			ssh.Password(sshPassword),
		},
		HostKeyCallback: ssh.InsecureIgnoreHostKey(),
	}

	sshConn, err := ssh.Dial("tcp", fmt.Sprintf("%s:%s", sshHost, sshPort), sshConfig)
	if err != nil {
		return nil, nil, err
	}

	sftpClient, err := sftp.NewClient(sshConn)
	if err != nil {
		sshConn.Close()
		return nil, nil, err
	}

	return sftpClient, sshConn, nil
}

// DownloadLatest copies the newest remote file matching prefix into localDir
// and returns the local path.
func DownloadLatest(client *sftp.Client, remoteDir, prefix, localDir string) (string, error) {
	files, err := client.ReadDir(remoteDir)
	if err != nil {
		return "", fmt.Errorf("unable to list remote directory: %w", err)
	}

	latest, err := utils.GetLatestFile(files, prefix)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(localDir, 0o755); err != nil {
		return "", fmt.Errorf("unable to create download directory: %w", err)
	}

	localPath := filepath.Join(localDir, latest.Name())
	remotePath := remoteDir + "/" + latest.Name()

	remoteFile, err := client.Open(remotePath)
	if err != nil {
		return "", fmt.Errorf("unable to open remote file: %w", err)
	}
	defer remoteFile.Close()

	dstFile, err := os.Create(localPath)
	if err != nil {
		return "", fmt.Errorf("unable to create local file: %w", err)
	}
	defer dstFile.Close()

	if _, err := remoteFile.WriteTo(dstFile); err != nil {
		return "", fmt.Errorf("unable to download remote file: %w", err)
	}

	return localPath, nil
}
