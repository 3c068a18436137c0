// Package common holds the logger shared by the strenum packages and a few
// generic slice helpers.
package common
