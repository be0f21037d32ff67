package main

import (
	"log"

	"cofoundr-be/internal/model"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SeedNotificationTypes populates the notification type registry.
func SeedNotificationTypes(db *gorm.DB) {
	types := []model.NotificationType{
		{
			Code:        "MATCH_CREATED",
			DisplayName: "New Match",
			Template:    "You have a new match! Start the conversation.",
			TargetType:  "PAIR",
			Priority:    "HIGH",
			IsActive:    true,
			Channels:    datatypes.JSON([]byte(`["web"]`)),
		},
		{
			Code:        "MESSAGE_SENT",
			DisplayName: "New Message",
			Template:    "New message: {preview}",
			TargetType:  "PARTNER",
			Priority:    "MEDIUM",
			IsActive:    true,
			Channels:    datatypes.JSON([]byte(`["web"]`)),
		},
		{
			Code:        "COLLAB_PROPOSED",
			DisplayName: "Collaboration Proposed",
			Template:    "Your match proposed a collaboration: \"{title}\"",
			TargetType:  "PARTNER",
			Priority:    "HIGH",
			IsActive:    true,
			Channels:    datatypes.JSON([]byte(`["web"]`)),
		},
		{
			Code:        "COLLAB_ACCEPTED",
			DisplayName: "Collaboration Accepted",
			Template:    "Your collaboration \"{title}\" was accepted. Time to get started!",
			TargetType:  "PARTNER",
			Priority:    "HIGH",
			IsActive:    true,
			Channels:    datatypes.JSON([]byte(`["web"]`)),
		},
		{
			Code:        "COLLAB_CANCELLED",
			DisplayName: "Collaboration Cancelled",
			Template:    "The collaboration \"{title}\" was cancelled.",
			TargetType:  "PARTNER",
			Priority:    "MEDIUM",
			IsActive:    true,
			Channels:    datatypes.JSON([]byte(`["web"]`)),
		},
		{
			Code:        "COLLAB_STEP_SAVED",
			DisplayName: "Step Progress",
			Template:    "Your partner saved progress on step {step_index}. Overall progress: {progress}%",
			TargetType:  "PARTNER",
			Priority:    "LOW",
			IsActive:    true,
			Channels:    datatypes.JSON([]byte(`["web"]`)),
		},
		{
			Code:        "COLLAB_COMPLETED",
			DisplayName: "Collaboration Completed",
			Template:    "All steps of \"{title}\" are done. Congratulations!",
			TargetType:  "PARTNER",
			Priority:    "HIGH",
			IsActive:    true,
			Channels:    datatypes.JSON([]byte(`["web"]`)),
		},
		{
			Code:        "SYSTEM_BROADCAST",
			DisplayName: "System Announcement",
			Template:    "{message}",
			TargetType:  "BROADCAST",
			Priority:    "HIGH",
			IsActive:    true,
			Channels:    datatypes.JSON([]byte(`["web"]`)),
		},
	}

	for _, t := range types {
		if err := db.Where("code = ?", t.Code).FirstOrCreate(&t).Error; err != nil {
			log.Printf("Error seeding notification type %s: %v", t.Code, err)
		}
	}
	log.Println("Notification types seeded.")
}
